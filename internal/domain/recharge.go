package domain

import "time"

// Status codes follow the provider's convention: "200" delivered,
// "400" failed, anything else is an intermediate provider code.
type RechargeStatus string

const (
	StatusSuccess RechargeStatus = "200"
	StatusFailed  RechargeStatus = "400"
	StatusPending RechargeStatus = "PENDING"
)

// IsTerminal reports whether a status can no longer be changed by callbacks.
func (s RechargeStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

type Recharge struct {
	TransactionID  string
	SenderMsisdn   string
	ReceiverMsisdn string
	Amount         float64
	Status         RechargeStatus
	ErrorMessage   string
	OwnerID        string
	Provider       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type RechargeFilters struct {
	OwnerID  string
	DateFrom time.Time
	Search   string
}

type RechargeStatistics struct {
	MonthlyTotal      float64
	NewClientsCount   int64
	MonthlyTimeSeries []MonthlyVolume
}

type MonthlyVolume struct {
	Month string
	Total float64
}
