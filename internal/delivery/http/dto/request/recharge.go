package request

type RegisterRequest struct {
	Phone string `json:"phone"`
	Pin   string `json:"pin"`
}

type LoginRequest struct {
	Phone string `json:"phone"`
	Pin   string `json:"pin"`
}

type SubmitRechargeRequest struct {
	ReceiverMsisdn string  `json:"receiverMsisdn"`
	Amount         float64 `json:"amount"`
	ServicePin     string  `json:"servicePin"`
}

type ValidateCallbackRequest struct {
	TransactionID string  `json:"transactionId"`
	PhoneNumber   string  `json:"phoneNumber"`
	Amount        float64 `json:"amount"`
	CurrencyCode  string  `json:"currencyCode"`
}

type StatusCallbackRequest struct {
	TransactionID string `json:"transactionId"`
	PhoneNumber   string `json:"phoneNumber"`
	Status        string `json:"status"`
	ErrorMessage  string `json:"errorMessage"`
}
