package response_models

type BookingResponse struct {
	ID              string `json:"id"`
	CarID           string `json:"car_id"`
	GuestID         string `json:"guest_id"`
	HostID          string `json:"host_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TotalPriceMinor int64  `json:"total_price_minor"`
	Currency        string `json:"currency"`
	WithDriver      bool   `json:"with_driver"`
	PickupLocation  string `json:"pickup_location,omitempty"`
	DropoffLocation string `json:"dropoff_location,omitempty"`
	Status          string `json:"status"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}
