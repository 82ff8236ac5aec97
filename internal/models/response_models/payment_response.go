package response_models

type PaymentResponse struct {
	ID                string `json:"id"`
	BookingID         string `json:"booking_id"`
	PayerID           string `json:"payer_id"`
	RecipientID       string `json:"recipient_id"`
	AmountMinor       int64  `json:"amount_minor"`
	Currency          string `json:"currency"`
	Method            string `json:"method"`
	Type              string `json:"type"`
	Status            string `json:"status"`
	HostEarningsMinor int64  `json:"host_earnings_minor,omitempty"`
	TransactionID     string `json:"transaction_id,omitempty"`
}

type PaymentTransactionResponse struct {
	ID          string `json:"id"`
	PaymentID   string `json:"payment_id"`
	Type        string `json:"type"`
	AmountMinor int64  `json:"amount_minor"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"`
}

type CompletePaymentResponse struct {
	Payment     PaymentResponse            `json:"payment"`
	Transaction PaymentTransactionResponse `json:"transaction"`
}
