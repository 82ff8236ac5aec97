package response_models

// QuoteResponse is the pricing breakdown for a concrete date range.
// All monetary fields are minor units.
type QuoteResponse struct {
	Days             int64 `json:"days"`
	CarPriceMinor    int64 `json:"car_price_minor"`
	PlatformFeeMinor int64 `json:"platform_fee_minor"`
	BaseTotalMinor   int64 `json:"base_total_minor"`
	TaxMinor         int64 `json:"tax_minor"`
	TotalPriceMinor  int64 `json:"total_price_minor"`
}

type CarResponse struct {
	ID                  string `json:"id"`
	HostID              string `json:"host_id"`
	Make                string `json:"make,omitempty"`
	Model               string `json:"model,omitempty"`
	Year                int    `json:"year"`
	DailyRateMinor      int64  `json:"daily_rate_minor"`
	Currency            string `json:"currency"`
	WithDriverAvailable bool   `json:"with_driver_available"`
	City                string `json:"city"`
	Address             string `json:"address,omitempty"`

	// Present only when the search carried a date range.
	Quote *QuoteResponse `json:"quote,omitempty"`
}
