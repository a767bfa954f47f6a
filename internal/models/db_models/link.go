package db_models

type Link struct {
	BaseModel
	Code        string `gorm:"size:16;uniqueIndex;not null"`
	URL         string `gorm:"size:2048;not null"`
	UtmSource   string `gorm:"size:64"`
	UtmMedium   string `gorm:"size:64"`
	UtmCampaign string `gorm:"size:64"`
	Clicks      int64  `gorm:"not null;default:0"`
}
