package response_models

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type AccountResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Role          string `json:"role"`
	EarningsMinor int64  `json:"earnings_minor,omitempty"`
}
