package response

import "time"

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type RegisterResponse struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
}

type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type TransactionResponse struct {
	TransactionID  string    `json:"transactionId"`
	SenderMsisdn   string    `json:"senderMsisdn"`
	ReceiverMsisdn string    `json:"receiverMsisdn"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
	Provider       string    `json:"provider"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Pages        int64                 `json:"pages"`
}

type StatisticsResponse struct {
	MonthlyTotal      float64         `json:"monthlyTotal"`
	NewClientsCount   int64           `json:"newClientsCount"`
	MonthlyTimeSeries []MonthlyVolume `json:"monthlyTimeSeries"`
}

type MonthlyVolume struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}
