package kafka

// RechargeEvent is published for every recorded submission outcome and
// every callback reconciliation.
type RechargeEvent struct {
	TransactionID  string  `json:"transaction_id"`
	OwnerID        string  `json:"owner_id"`
	SenderMsisdn   string  `json:"sender_msisdn"`
	ReceiverMsisdn string  `json:"receiver_msisdn"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	Provider       string  `json:"provider"`
	Source         string  `json:"source"` // "submission" or "callback"
}
