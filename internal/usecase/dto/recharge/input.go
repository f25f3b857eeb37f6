package rechargedto

import "github.com/kelvinjuma/airtime-recharge-service/internal/domain"

type SubmitRechargeInput struct {
	Caller         domain.AuthUser
	ReceiverMsisdn string
	Amount         float64
	ServicePin     string
}

type ListTransactionsInput struct {
	Caller   domain.AuthUser
	Page     int64
	PageSize int64
	Search   string
	Range    string // month, quarter or year
}

type ValidateCallbackInput struct {
	TransactionID string
	PhoneNumber   string
	Amount        float64
	CurrencyCode  string
}

type StatusCallbackInput struct {
	TransactionID string
	PhoneNumber   string
	Status        string
	ErrorMessage  string
}
