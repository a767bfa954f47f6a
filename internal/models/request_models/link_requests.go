package request_models

type ShortenRequest struct {
	URL         string `json:"url" binding:"required,url"`
	UtmSource   string `json:"utm_source"`
	UtmMedium   string `json:"utm_medium"`
	UtmCampaign string `json:"utm_campaign"`
}
