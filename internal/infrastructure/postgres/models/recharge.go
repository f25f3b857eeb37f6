package models

import (
	"time"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
)

type RechargeModel struct {
	TransactionID  string                `gorm:"primaryKey"`
	SenderMsisdn   string                `gorm:"not null;index:idx_recharge_sender"`
	ReceiverMsisdn string                `gorm:"not null;index:idx_recharge_receiver"`
	Amount         float64               `gorm:"not null"`
	Status         domain.RechargeStatus `gorm:"not null;index:idx_recharge_status"`
	ErrorMessage   string
	OwnerID        string    `gorm:"type:uuid;index:idx_recharge_owner"`
	Provider       string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"index:idx_recharge_created_at"`
	UpdatedAt      time.Time
}
