package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/postgres/mappers"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRechargeRepository struct {
	DB *gorm.DB
}

func NewDefaultRechargeRepository(db *gorm.DB) *DefaultRechargeRepository {
	return &DefaultRechargeRepository{DB: db}
}

func (r *DefaultRechargeRepository) CreateRecharge(recharge *domain.Recharge) error {
	rechargeModel := mappers.ToRechargeModel(recharge)
	if err := r.DB.Create(rechargeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("transaction %s: %w", recharge.TransactionID, domain.ErrDuplicateTransaction)
		}
		return fmt.Errorf("%w: %v", domain.ErrLedgerWriteFailure, err)
	}
	return nil
}

func (r *DefaultRechargeRepository) GetRechargeByTransactionID(transactionID string) (*domain.Recharge, error) {
	var rechargeModel models.RechargeModel
	if err := r.DB.First(&rechargeModel, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToRechargeDomain(&rechargeModel), nil
}

// UpdateRechargeStatus flips a record to a terminal status. The WHERE clause
// keeps the transition monotonic: records already in a terminal status are
// left untouched even under concurrent callbacks.
func (r *DefaultRechargeRepository) UpdateRechargeStatus(transactionID string, newStatus domain.RechargeStatus, errorMessage string) error {
	result := r.DB.Model(&models.RechargeModel{}).
		Where("transaction_id = ? AND status NOT IN ?", transactionID, []domain.RechargeStatus{domain.StatusSuccess, domain.StatusFailed}).
		Updates(map[string]interface{}{
			"status":        newStatus,
			"error_message": errorMessage,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerWriteFailure, result.Error)
	}
	return nil
}

func (r *DefaultRechargeRepository) GetRechargesByOwnerID(filters domain.RechargeFilters, page, limit int64) ([]*domain.Recharge, int64, error) {
	var rechargeModels []models.RechargeModel
	var total int64

	baseQuery := r.DB.Model(&models.RechargeModel{}).
		Where("owner_id = ?", filters.OwnerID)

	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		baseQuery = baseQuery.Where(
			"sender_msisdn ILIKE ? OR receiver_msisdn ILIKE ? OR transaction_id ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&rechargeModels).Error; err != nil {
		return nil, 0, err
	}

	recharges := make([]*domain.Recharge, 0, len(rechargeModels))
	for i := range rechargeModels {
		recharges = append(recharges, mappers.ToRechargeDomain(&rechargeModels[i]))
	}

	return recharges, total, nil
}

func (r *DefaultRechargeRepository) GetRechargeStatistics(ownerID string, monthStart, yearStart time.Time) (*domain.RechargeStatistics, error) {
	stats := &domain.RechargeStatistics{}

	err := r.DB.Model(&models.RechargeModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("owner_id = ? AND status = ? AND created_at >= ?", ownerID, domain.StatusSuccess, monthStart).
		Scan(&stats.MonthlyTotal).Error
	if err != nil {
		return nil, err
	}

	// Receivers whose first successful recharge from this owner falls in
	// the current month.
	err = r.DB.Raw(`
		SELECT COUNT(*) FROM (
			SELECT receiver_msisdn, MIN(created_at) AS first_at
			FROM recharge_models
			WHERE owner_id = ? AND status = ?
			GROUP BY receiver_msisdn
		) firsts
		WHERE first_at >= ?`,
		ownerID, domain.StatusSuccess, monthStart,
	).Scan(&stats.NewClientsCount).Error
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Month string
		Total float64
	}
	err = r.DB.Raw(`
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		       SUM(amount) AS total
		FROM recharge_models
		WHERE owner_id = ? AND status = ? AND created_at >= ?
		GROUP BY 1
		ORDER BY 1`,
		ownerID, domain.StatusSuccess, yearStart,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats.MonthlyTimeSeries = make([]domain.MonthlyVolume, 0, len(rows))
	for _, row := range rows {
		stats.MonthlyTimeSeries = append(stats.MonthlyTimeSeries, domain.MonthlyVolume{
			Month: row.Month,
			Total: row.Total,
		})
	}

	return stats, nil
}
