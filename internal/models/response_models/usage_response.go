package response_models

// UsageInfo is the forward-looking quota projection returned by the ledger's
// read path. PendingReset means the rolling window already elapsed and the
// next metered call will zero the counter; the figures here are reported as
// if that reset had happened, without touching stored state.
type UsageInfo struct {
	Plan           string  `json:"plan"`
	MonthlyQuota   int     `json:"monthly_quota"`
	UsedQuota      int     `json:"used_quota"`
	RemainingQuota int     `json:"remaining_quota"`
	PercentageUsed float64 `json:"percentage_used"`
	PendingReset   bool    `json:"pending_reset,omitempty"`
	LastReset      string  `json:"last_reset,omitempty"`
}

type SubscriptionInfo struct {
	Plan         string `json:"plan"`
	MonthlyQuota int    `json:"monthly_quota"`
	UsedQuota    int    `json:"used_quota"`
	IsActive     bool   `json:"is_active"`
	LastReset    string `json:"last_reset,omitempty"`
}
