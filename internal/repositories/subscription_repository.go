package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hookify/internal/models/db_models"
	"hookify/pkg/utils"
)

// SubscriptionRepository is the storage boundary of the quota ledger. All
// quota mutations for one account go through a single transaction here, so
// multiple process instances sharing the database stay serialized on the
// subscription row rather than on in-process locks.
type SubscriptionRepository interface {
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
	ConsumeQuota(ctx context.Context, accountID uuid.UUID, gen *db_models.Generation, now time.Time) (*db_models.Subscription, error)
	UpdatePlan(ctx context.Context, accountID uuid.UUID, tier db_models.PlanTier, newQuota int) (*db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

func (s *subscriptionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).First(&sub, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

// ConsumeQuota performs one metered commit: reset the window if it elapsed,
// admit the call, charge one unit, and append the generation record. The
// three steps run in one transaction; a denial rolls back with no mutation.
//
// The charge is a guarded UPDATE (used_quota < monthly_quota), so under
// read-committed isolation two racing commits at one remaining unit resolve
// to exactly one success: the loser blocks on the row lock and re-evaluates
// the guard after the winner commits.
func (s *subscriptionRepository) ConsumeQuota(ctx context.Context, accountID uuid.UUID, gen *db_models.Generation, now time.Time) (*db_models.Subscription, error) {
	var sub db_models.Subscription

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "account_id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrNoSubscription
			}
			return err
		}

		if sub.ResetDue(now) {
			// Guarded on the observed last_reset so two racing commits
			// cannot both zero the window.
			if err := tx.Model(&db_models.Subscription{}).
				Where("account_id = ? AND last_reset = ?", accountID, sub.LastReset).
				Updates(map[string]interface{}{
					"used_quota": 0,
					"last_reset": now.Unix(),
				}).Error; err != nil {
				return err
			}
		}

		res := tx.Model(&db_models.Subscription{}).
			Where("account_id = ? AND used_quota < monthly_quota", accountID).
			UpdateColumn("used_quota", gorm.Expr("used_quota + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrQuotaExceeded
		}

		gen.AccountID = accountID
		if err := tx.Create(gen).Error; err != nil {
			return err
		}

		return tx.First(&sub, "account_id = ?", accountID).Error
	})
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

// UpdatePlan moves the subscription to a new tier and reactivates it. On a
// downgrade the consumed counter is clamped to the new ceiling, compared
// against the ceiling held before this change; upgrades keep usage as is.
func (s *subscriptionRepository) UpdatePlan(ctx context.Context, accountID uuid.UUID, tier db_models.PlanTier, newQuota int) (*db_models.Subscription, error) {
	var sub db_models.Subscription

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "account_id = ?", accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrNoSubscription
			}
			return err
		}

		previousQuota := sub.MonthlyQuota

		sub.PlanTier = tier
		sub.MonthlyQuota = newQuota
		sub.IsActive = true
		if newQuota < previousQuota && sub.UsedQuota > newQuota {
			sub.UsedQuota = newQuota
		}

		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}

	return &sub, nil
}
