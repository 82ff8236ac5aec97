package request_models

type CreateCarRequest struct {
	CarMakeID           string `json:"car_make_id" binding:"required,uuid"`
	CarModelID          string `json:"car_model_id" binding:"required,uuid"`
	Year                int    `json:"year" binding:"required,gte=1980"`
	Plate               string `json:"plate" binding:"required"`
	DailyRateMinor      int64  `json:"daily_rate_minor" binding:"required,gt=0"`
	Currency            string `json:"currency" binding:"required,len=3"`
	WithDriverAvailable bool   `json:"with_driver_available"`
	City                string `json:"city" binding:"required"`
	Address             string `json:"address"`
}

type UpdateCarRequest struct {
	DailyRateMinor      *int64  `json:"daily_rate_minor" binding:"omitempty,gt=0"`
	WithDriverAvailable *bool   `json:"with_driver_available"`
	City                *string `json:"city"`
	Address             *string `json:"address"`
	Active              *bool   `json:"active"`
}

// SearchCarsQuery is bound from query parameters. Dates are optional; when
// absent the search skips the availability filter entirely.
type SearchCarsQuery struct {
	City      string `form:"city"`
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"page_size,default=20"`
}
