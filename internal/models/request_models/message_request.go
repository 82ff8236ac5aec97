package request_models

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	BookingID   string `json:"booking_id" binding:"omitempty,uuid"`
	Body        string `json:"body" binding:"required"`
}

type RecordInspectionRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Kind      string `json:"kind" binding:"required,oneof=PICKUP DROPOFF"`
	Approved  bool   `json:"approved"`
	Notes     string `json:"notes"`
}
