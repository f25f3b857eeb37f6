package rechargedto

import "github.com/kelvinjuma/airtime-recharge-service/internal/domain"

type SubmitRechargeOutput struct {
	Success        bool   `json:"success"`
	ResponseID     string `json:"responseId,omitempty"`
	ResponseStatus string `json:"responseStatus"`
	TransactionID  string `json:"transactionId"`
	ResponseDesc   string `json:"responseDesc"`
}

type BulkRowError struct {
	Row    []string           `json:"row"`
	Tag    domain.RowErrorTag `json:"tag"`
	Detail string             `json:"detail"`
}

type BulkOutput struct {
	TotalProcessed  int                    `json:"totalProcessed"`
	SuccessfulCount int                    `json:"successfulCount"`
	FailedCount     int                    `json:"failedCount"`
	Results         []SubmitRechargeOutput `json:"results"`
	Errors          []BulkRowError         `json:"errors"`
}

type ListTransactionsOutput struct {
	Transactions []*domain.Recharge
	Total        int64
	Pages        int64
}

type ValidateCallbackOutput struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transactionId"`
	PhoneNumber   string  `json:"phoneNumber"`
	Amount        float64 `json:"amount"`
	CurrencyCode  string  `json:"currencyCode"`
}

type StatusCallbackOutput struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
}
