package db_models

import (
	"time"

	"github.com/google/uuid"
)

type PlanTier string

const (
	PlanFree    PlanTier = "FREE"
	PlanBasic   PlanTier = "BASIC"
	PlanPro     PlanTier = "PRO"
	PlanPremium PlanTier = "PREMIUM"
)

// PlanQuotas is the catalog of monthly generation ceilings per tier.
// Loaded once at process start, read-only afterwards.
var PlanQuotas = map[PlanTier]int{
	PlanFree:    10,
	PlanBasic:   100,
	PlanPro:     500,
	PlanPremium: 2000,
}

// PlanPricesMinor holds monthly prices in minor currency units (e.g. 2900 = $29.00).
var PlanPricesMinor = map[PlanTier]int64{
	PlanFree:    0,
	PlanBasic:   2900,
	PlanPro:     7900,
	PlanPremium: 19900,
}

// QuotaResetWindow is the rolling quota window. It is anchored to the
// subscription's last reset, not to calendar months.
const QuotaResetWindow = 30 * 24 * time.Hour

func QuotaFor(tier PlanTier) (int, bool) {
	quota, ok := PlanQuotas[tier]
	return quota, ok
}

func ValidTiers() []PlanTier {
	return []PlanTier{PlanFree, PlanBasic, PlanPro, PlanPremium}
}

type Subscription struct {
	BaseModel
	AccountID    uuid.UUID `gorm:"uniqueIndex"`
	PlanTier     PlanTier  `gorm:"size:16;default:'FREE'"`
	MonthlyQuota int       `gorm:"not null"`
	UsedQuota    int       `gorm:"not null;default:0"`
	LastReset    int64     `gorm:"not null"`
	IsActive     bool      `gorm:"default:true"`

	Account *Account `gorm:"foreignKey:AccountID"`
}

// ResetDue reports whether the rolling window elapsed since the last reset.
// A zero LastReset counts as due.
func (s *Subscription) ResetDue(now time.Time) bool {
	if s.LastReset <= 0 {
		return true
	}
	return now.Sub(time.Unix(s.LastReset, 0)) > QuotaResetWindow
}

func (s *Subscription) CanGenerate() bool {
	return s.UsedQuota < s.MonthlyQuota
}

func (s *Subscription) RemainingQuota() int {
	if remaining := s.MonthlyQuota - s.UsedQuota; remaining > 0 {
		return remaining
	}
	return 0
}
