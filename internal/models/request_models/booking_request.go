package request_models

type CreateBookingRequest struct {
	CarID           string `json:"car_id" binding:"required,uuid"`
	StartDate       string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate         string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	WithDriver      bool   `json:"with_driver"`
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
}

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
