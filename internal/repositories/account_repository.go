package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"hookify/internal/models/db_models"
)

type AccountRepository interface {
	CreateWithSubscription(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// CreateWithSubscription inserts the account together with its FREE-tier
// subscription. Every account owns exactly one subscription from the moment
// it exists, so the quota ledger never sees a half-registered account.
func (a *accountRepository) CreateWithSubscription(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		quota, _ := db_models.QuotaFor(db_models.PlanFree)
		subscription := &db_models.Subscription{
			AccountID:    account.ID,
			PlanTier:     db_models.PlanFree,
			MonthlyQuota: quota,
			UsedQuota:    0,
			LastReset:    time.Now().Unix(),
			IsActive:     true,
		}
		return tx.Create(subscription).Error
	})
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// IsUniqueViolation reports whether err is a duplicate-key failure, either as
// gorm's translated sentinel or a raw postgres 23505.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
