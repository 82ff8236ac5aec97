package request_models

type CreateDisputeRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Reason    string `json:"reason" binding:"required"`
	PaymentID string `json:"payment_id" binding:"omitempty,uuid"`
}

type ResolveDisputeRequest struct {
	RefundAmountMinor int64  `json:"refund_amount_minor" binding:"gte=0"`
	Notes             string `json:"notes"`
}
