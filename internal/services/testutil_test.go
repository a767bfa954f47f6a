package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hookify/internal/models/db_models"
)

// setupTestDB opens a private in-memory database for one test. The pool is
// capped at one connection so concurrent transactions serialize the way a
// row lock would on postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&db_models.Account{},
		&db_models.Subscription{},
		&db_models.ApiKey{},
		&db_models.Generation{},
		&db_models.Link{},
	))

	return db
}

func seedAccount(t *testing.T, db *gorm.DB) *db_models.Account {
	t.Helper()

	account := &db_models.Account{
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func seedSubscription(t *testing.T, db *gorm.DB, accountID uuid.UUID, tier db_models.PlanTier, monthlyQuota, usedQuota int, lastReset time.Time) *db_models.Subscription {
	t.Helper()

	sub := &db_models.Subscription{
		AccountID:    accountID,
		PlanTier:     tier,
		MonthlyQuota: monthlyQuota,
		UsedQuota:    usedQuota,
		LastReset:    lastReset.Unix(),
		IsActive:     true,
	}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

func reloadSubscription(t *testing.T, db *gorm.DB, accountID uuid.UUID) *db_models.Subscription {
	t.Helper()

	var sub db_models.Subscription
	require.NoError(t, db.First(&sub, "account_id = ?", accountID).Error)
	return &sub
}

func countGenerations(t *testing.T, db *gorm.DB, accountID uuid.UUID) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&db_models.Generation{}).
		Where("account_id = ?", accountID).
		Count(&count).Error)
	return count
}
