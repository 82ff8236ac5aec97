package request_models

type CreatePaymentRequest struct {
	BookingID   string `json:"booking_id" binding:"required,uuid"`
	AmountMinor int64  `json:"amount_minor" binding:"required,gt=0"`
	Currency    string `json:"currency" binding:"required,len=3"`
	Method      string `json:"method" binding:"required"`
	Type        string `json:"type" binding:"required"`
}

type RefundPaymentRequest struct {
	BookingID         string `json:"booking_id" binding:"required,uuid"`
	RefundAmountMinor int64  `json:"refund_amount_minor" binding:"required,gt=0"`
	Reason            string `json:"reason"`
}

type ReleaseToHostRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	HostID    string `json:"host_id" binding:"required,uuid"`
}
