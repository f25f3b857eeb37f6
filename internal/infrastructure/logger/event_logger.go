package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type RechargeCreatedEvent struct {
	ID             uint `gorm:"primaryKey"`
	TransactionID  string
	OwnerID        string
	SenderMsisdn   string
	ReceiverMsisdn string
	Amount         float64
	Status         string
	Provider       string
	Timestamp      time.Time
}

type RechargeFailedEvent struct {
	ID             uint `gorm:"primaryKey"`
	TransactionID  string
	OwnerID        string
	ReceiverMsisdn string
	Amount         float64
	Reason         string
	Detail         string
	Timestamp      time.Time
}

type RechargeEventLogger interface {
	LogRechargeCreated(ctx context.Context, event RechargeCreatedEvent) error
	LogRechargeFailed(ctx context.Context, event RechargeFailedEvent) error
}

type PGRechargeEventLogger struct {
	db *gorm.DB
}

func NewPGRechargeEventLogger(db *gorm.DB) *PGRechargeEventLogger {
	return &PGRechargeEventLogger{db: db}
}

func (l *PGRechargeEventLogger) LogRechargeCreated(ctx context.Context, event RechargeCreatedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGRechargeEventLogger) LogRechargeFailed(ctx context.Context, event RechargeFailedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
