package response_models

type AccountResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Plan     string `json:"plan"`
}

type ApiKeyResponse struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	LastUsed string `json:"last_used,omitempty"`
}

type PlanDetails struct {
	Tier         string `json:"tier"`
	MonthlyQuota int    `json:"monthly_quota"`
	PriceMinor   int64  `json:"price_minor"`
}
