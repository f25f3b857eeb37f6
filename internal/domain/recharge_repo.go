package domain

import "time"

type RechargeRepository interface {
	CreateRecharge(recharge *Recharge) error
	GetRechargeByTransactionID(transactionID string) (*Recharge, error)
	UpdateRechargeStatus(transactionID string, newStatus RechargeStatus, errorMessage string) error
	GetRechargesByOwnerID(filters RechargeFilters, page, limit int64) ([]*Recharge, int64, error)
	GetRechargeStatistics(ownerID string, monthStart, yearStart time.Time) (*RechargeStatistics, error)
}
