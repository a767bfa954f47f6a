package services

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hookify/internal/models/db_models"
	"hookify/internal/models/response_models"
	"hookify/internal/repositories"
	"hookify/pkg/utils"
)

// QuotaServiceInterface is the sole authority over the monthly generation
// allowance: it decides whether one more metered call is permitted, records
// the call, and applies the rolling-window reset and plan-change policies.
type QuotaServiceInterface interface {
	CheckAndCommit(ctx context.Context, accountID uuid.UUID, genType db_models.GenerationType, input interface{}, output interface{}) (int, error)
	DescribeUsage(ctx context.Context, accountID uuid.UUID) (response_models.UsageInfo, error)
	ChangePlan(ctx context.Context, accountID uuid.UUID, tier db_models.PlanTier) (response_models.SubscriptionInfo, error)
}

type QuotaService struct {
	subscriptionRepo repositories.SubscriptionRepository
}

func NewQuotaService(subscriptionRepo repositories.SubscriptionRepository) QuotaServiceInterface {
	return &QuotaService{
		subscriptionRepo: subscriptionRepo,
	}
}

// CheckAndCommit charges exactly one unit against the account's subscription
// and appends the generation record in the same transaction. It returns the
// balance remaining after the charge. A denial leaves all state untouched.
func (q *QuotaService) CheckAndCommit(ctx context.Context, accountID uuid.UUID, genType db_models.GenerationType, input interface{}, output interface{}) (int, error) {
	gen := &db_models.Generation{
		Type:       genType,
		InputData:  marshalSummary(input, db_models.GenerationInputLimit),
		OutputData: marshalSummary(output, db_models.GenerationOutputLimit),
	}

	sub, err := q.subscriptionRepo.ConsumeQuota(ctx, accountID, gen, time.Now())
	if err != nil {
		return 0, err
	}

	return sub.RemainingQuota(), nil
}

// DescribeUsage reports the account's quota position without mutating it.
// When the reset window already elapsed the figures are projected as if the
// reset had run; only the commit path actually performs it. An account
// without a subscription gets a zero-valued NONE descriptor, not an error.
func (q *QuotaService) DescribeUsage(ctx context.Context, accountID uuid.UUID) (response_models.UsageInfo, error) {
	sub, err := q.subscriptionRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return response_models.UsageInfo{}, utils.ErrDatabaseError
	}

	if sub == nil {
		return response_models.UsageInfo{Plan: "NONE"}, nil
	}

	if sub.ResetDue(time.Now()) {
		return response_models.UsageInfo{
			Plan:           string(sub.PlanTier),
			MonthlyQuota:   sub.MonthlyQuota,
			UsedQuota:      0,
			RemainingQuota: sub.MonthlyQuota,
			PercentageUsed: 0,
			PendingReset:   true,
			LastReset:      formatUnix(sub.LastReset),
		}, nil
	}

	percentage := 0.0
	if sub.MonthlyQuota > 0 {
		percentage = float64(sub.UsedQuota) / float64(sub.MonthlyQuota) * 100
		percentage = math.Round(percentage*100) / 100
	}

	return response_models.UsageInfo{
		Plan:           string(sub.PlanTier),
		MonthlyQuota:   sub.MonthlyQuota,
		UsedQuota:      sub.UsedQuota,
		RemainingQuota: sub.RemainingQuota(),
		PercentageUsed: percentage,
		LastReset:      formatUnix(sub.LastReset),
	}, nil
}

// ChangePlan moves the account to a new tier. Downgrades clamp the consumed
// counter to the new ceiling so the account never appears over quota right
// after the change; upgrades keep usage untouched. The subscription is
// reactivated unconditionally. Usage is intentionally never reset here.
func (q *QuotaService) ChangePlan(ctx context.Context, accountID uuid.UUID, tier db_models.PlanTier) (response_models.SubscriptionInfo, error) {
	newQuota, ok := db_models.QuotaFor(tier)
	if !ok {
		return response_models.SubscriptionInfo{}, utils.ErrInvalidTier
	}

	sub, err := q.subscriptionRepo.UpdatePlan(ctx, accountID, tier, newQuota)
	if err != nil {
		return response_models.SubscriptionInfo{}, err
	}

	return response_models.SubscriptionInfo{
		Plan:         string(sub.PlanTier),
		MonthlyQuota: sub.MonthlyQuota,
		UsedQuota:    sub.UsedQuota,
		IsActive:     sub.IsActive,
		LastReset:    formatUnix(sub.LastReset),
	}, nil
}

// marshalSummary serializes an opaque request/response summary for storage,
// producing a valid JSON value even when the payload exceeds the column cap.
func marshalSummary(v interface{}, limit int) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	if len(b) > limit {
		trimmed, err := json.Marshal(string(b[:limit]))
		if err != nil {
			return nil
		}
		return trimmed
	}
	return b
}

func formatUnix(ts int64) string {
	if ts <= 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
