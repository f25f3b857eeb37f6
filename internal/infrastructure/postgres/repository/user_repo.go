package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

var ErrPhoneTaken = errors.New("phone number already registered")

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) (string, error) {
	userModel := models.UserModel{
		ID:      uuid.New().String(),
		Phone:   user.Phone,
		PinHash: user.PinHash,
		Role:    user.Role,
	}

	if err := r.DB.Create(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrPhoneTaken
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = userModel.ID
	return user.ID, nil
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toUserDomain(&userModel), nil
}

func (r *DefaultUserRepository) GetUserByPhone(phone string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toUserDomain(&userModel), nil
}

func toUserDomain(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:        model.ID,
		Phone:     model.Phone,
		PinHash:   model.PinHash,
		Role:      model.Role,
		CreatedAt: model.CreatedAt,
	}
}
