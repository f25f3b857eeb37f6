package usecase

import (
	"errors"
	"fmt"

	"github.com/kelvinjuma/airtime-recharge-service/internal/auth"
	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	"github.com/kelvinjuma/airtime-recharge-service/internal/msisdn"
	"golang.org/x/crypto/bcrypt"
)

var ErrWrongCredentials = errors.New("wrong phone or pin")

type UserUsecase interface {
	Register(phone, pin string) (*domain.User, error)
	Login(phone, pin string) (string, *domain.User, error)
}

type DefaultUserUsecase struct {
	UserRepo domain.UserRepository
	Tokens   *auth.TokenManager
}

func NewDefaultUserUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) *DefaultUserUsecase {
	return &DefaultUserUsecase{
		UserRepo: userRepo,
		Tokens:   tokens,
	}
}

func (uc *DefaultUserUsecase) Register(phone, pin string) (*domain.User, error) {
	if phone == "" || pin == "" {
		return nil, fmt.Errorf("phone and pin are required: %w", domain.ErrInvalidInput)
	}
	if !msisdn.IsValid(phone) {
		return nil, fmt.Errorf("invalid phone number: %w", domain.ErrInvalidFormat)
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}

	user := &domain.User{
		Phone:   phone,
		PinHash: string(pinHash),
		Role:    "user",
	}
	if _, err := uc.UserRepo.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *DefaultUserUsecase) Login(phone, pin string) (string, *domain.User, error) {
	user, err := uc.UserRepo.GetUserByPhone(phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrWrongCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(pin)); err != nil {
		return "", nil, ErrWrongCredentials
	}

	token, err := uc.Tokens.Generate(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}
