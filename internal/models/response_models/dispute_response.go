package response_models

type DisputeResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	PaymentID *string `json:"payment_id,omitempty"`
	UserID    string  `json:"user_id"`
	Reason    string  `json:"reason"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}
