package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hookify/internal/models/db_models"
	"hookify/pkg/utils"
)

func openRepoTestDB(t *testing.T) *gorm.DB {
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
		&db_models.Generation{},
	))

	return db
}

func seedLedgerAccount(t *testing.T, db *gorm.DB, tier db_models.PlanTier, used int, lastReset time.Time) uuid.UUID {
	t.Helper()

	account := &db_models.Account{
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, db.Create(account).Error)

	sub := &db_models.Subscription{
		AccountID:    account.ID,
		PlanTier:     tier,
		MonthlyQuota: db_models.PlanQuotas[tier],
		UsedQuota:    used,
		LastReset:    lastReset.Unix(),
		IsActive:     true,
	}
	require.NoError(t, db.Create(sub).Error)
	return account.ID
}

func testGeneration() *db_models.Generation {
	return &db_models.Generation{
		Type:       db_models.GenerationHook,
		InputData:  []byte(`{"topic":"x"}`),
		OutputData: []byte(`["y"]`),
	}
}

func TestConsumeQuota_ChargesAndRecordsTogether(t *testing.T) {
	db := openRepoTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	now := time.Now()
	accountID := seedLedgerAccount(t, db, db_models.PlanFree, 4, now)

	sub, err := repo.ConsumeQuota(ctx, accountID, testGeneration(), now)
	require.NoError(t, err)
	assert.Equal(t, 5, sub.UsedQuota)

	var count int64
	require.NoError(t, db.Model(&db_models.Generation{}).
		Where("account_id = ?", accountID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestConsumeQuota_DenialRollsBack(t *testing.T) {
	db := openRepoTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	now := time.Now()
	accountID := seedLedgerAccount(t, db, db_models.PlanFree, db_models.PlanQuotas[db_models.PlanFree], now)

	_, err := repo.ConsumeQuota(ctx, accountID, testGeneration(), now)
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)

	var sub db_models.Subscription
	require.NoError(t, db.First(&sub, "account_id = ?", accountID).Error)
	assert.Equal(t, db_models.PlanQuotas[db_models.PlanFree], sub.UsedQuota)

	var count int64
	require.NoError(t, db.Model(&db_models.Generation{}).
		Where("account_id = ?", accountID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestConsumeQuota_ResetsElapsedWindowBeforeCharging(t *testing.T) {
	db := openRepoTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	now := time.Now()
	stale := now.Add(-db_models.QuotaResetWindow - time.Hour)
	accountID := seedLedgerAccount(t, db, db_models.PlanFree, db_models.PlanQuotas[db_models.PlanFree], stale)

	sub, err := repo.ConsumeQuota(ctx, accountID, testGeneration(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, sub.UsedQuota)
	assert.Equal(t, now.Unix(), sub.LastReset)
}

func TestConsumeQuota_WindowBoundaryIsExclusive(t *testing.T) {
	db := openRepoTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	exactly := now.Add(-db_models.QuotaResetWindow)
	accountID := seedLedgerAccount(t, db, db_models.PlanFree, 3, exactly)

	// At exactly the window length the old window still applies.
	sub, err := repo.ConsumeQuota(ctx, accountID, testGeneration(), now)
	require.NoError(t, err)
	assert.Equal(t, 4, sub.UsedQuota)
	assert.Equal(t, exactly.Unix(), sub.LastReset)
}

func TestConsumeQuota_NoSubscription(t *testing.T) {
	db := openRepoTestDB(t)
	repo := NewSubscriptionRepository(db)

	_, err := repo.ConsumeQuota(context.Background(), uuid.New(), testGeneration(), time.Now())
	assert.ErrorIs(t, err, utils.ErrNoSubscription)
}

func TestUpdatePlan_DowngradeClampsUsage(t *testing.T) {
	db := openRepoTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	accountID := seedLedgerAccount(t, db, db_models.PlanPro, 450, time.Now())

	sub, err := repo.UpdatePlan(ctx, accountID, db_models.PlanFree, db_models.PlanQuotas[db_models.PlanFree])
	require.NoError(t, err)
	assert.Equal(t, db_models.PlanFree, sub.PlanTier)
	assert.Equal(t, 10, sub.MonthlyQuota)
	assert.Equal(t, 10, sub.UsedQuota)
}

func TestUpdatePlan_UpgradeKeepsUsage(t *testing.T) {
	db := openRepoTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	accountID := seedLedgerAccount(t, db, db_models.PlanFree, 8, time.Now())

	sub, err := repo.UpdatePlan(ctx, accountID, db_models.PlanPro, db_models.PlanQuotas[db_models.PlanPro])
	require.NoError(t, err)
	assert.Equal(t, db_models.PlanPro, sub.PlanTier)
	assert.Equal(t, 500, sub.MonthlyQuota)
	assert.Equal(t, 8, sub.UsedQuota)
}
