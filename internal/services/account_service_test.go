package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hookify/internal/models/db_models"
	"hookify/internal/models/request_models"
	"hookify/internal/repositories"
	"hookify/pkg/utils"
)

func newAccountFixture(t *testing.T) (AccountServiceInterface, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	service := NewAccountService(
		repositories.NewAccountRepository(db),
		repositories.NewApiKeyRepository(db),
		utils.NewTokenManager("test-secret"),
	)
	return service, db
}

func TestCreateAccount_StartsOnFreeTier(t *testing.T) {
	service, db := newAccountFixture(t)
	ctx := context.Background()

	err := service.CreateAccount(ctx, request_models.SignUpRequest{
		Email:    "new@example.com",
		Password: "supersecret",
		FullName: "New User",
	})
	require.NoError(t, err)

	var account db_models.Account
	require.NoError(t, db.First(&account, "email = ?", "new@example.com").Error)
	assert.True(t, account.IsActive)
	assert.NotEqual(t, "supersecret", account.PasswordHash)

	sub := reloadSubscription(t, db, account.ID)
	assert.Equal(t, db_models.PlanFree, sub.PlanTier)
	assert.Equal(t, db_models.PlanQuotas[db_models.PlanFree], sub.MonthlyQuota)
	assert.Equal(t, 0, sub.UsedQuota)
	assert.True(t, sub.IsActive)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	service, _ := newAccountFixture(t)
	ctx := context.Background()

	req := request_models.SignUpRequest{Email: "dup@example.com", Password: "supersecret"}
	require.NoError(t, service.CreateAccount(ctx, req))

	err := service.CreateAccount(ctx, req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin_ReturnsValidToken(t *testing.T) {
	service, db := newAccountFixture(t)
	ctx := context.Background()

	require.NoError(t, service.CreateAccount(ctx, request_models.SignUpRequest{
		Email:    "login@example.com",
		Password: "supersecret",
	}))

	token, err := service.Login(ctx, request_models.LoginRequest{
		Email:    "login@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var account db_models.Account
	require.NoError(t, db.First(&account, "email = ?", "login@example.com").Error)

	claims, err := utils.NewTokenManager("test-secret").ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.AccountID)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, _ := newAccountFixture(t)
	ctx := context.Background()

	require.NoError(t, service.CreateAccount(ctx, request_models.SignUpRequest{
		Email:    "wrongpw@example.com",
		Password: "supersecret",
	}))

	_, err := service.Login(ctx, request_models.LoginRequest{
		Email:    "wrongpw@example.com",
		Password: "notthepassword",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	service, _ := newAccountFixture(t)

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	service, db := newAccountFixture(t)
	ctx := context.Background()

	require.NoError(t, service.CreateAccount(ctx, request_models.SignUpRequest{
		Email:    "inactive@example.com",
		Password: "supersecret",
	}))
	require.NoError(t, db.Model(&db_models.Account{}).
		Where("email = ?", "inactive@example.com").
		Update("is_active", false).Error)

	_, err := service.Login(ctx, request_models.LoginRequest{
		Email:    "inactive@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, utils.ErrAccountInactive)
}

func TestApiKey_CreateAndResolve(t *testing.T) {
	service, db := newAccountFixture(t)
	ctx := context.Background()
	account := seedAccount(t, db)

	created, err := service.CreateApiKey(ctx, account.ID, "CI key")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Key, "hk_"))
	assert.Equal(t, "CI key", created.Name)

	resolved, err := service.ResolveApiKey(ctx, created.Key)
	require.NoError(t, err)
	assert.Equal(t, account.ID, resolved)

	keys, err := service.ListApiKeys(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.NotEmpty(t, keys[0].LastUsed)
}

func TestResolveApiKey_RejectsUnknownAndInactive(t *testing.T) {
	service, db := newAccountFixture(t)
	ctx := context.Background()
	account := seedAccount(t, db)

	_, err := service.ResolveApiKey(ctx, "hk_does_not_exist")
	assert.ErrorIs(t, err, utils.ErrInvalidApiKey)

	created, err := service.CreateApiKey(ctx, account.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "Default Key", created.Name)

	require.NoError(t, db.Model(&db_models.ApiKey{}).
		Where("account_id = ?", account.ID).
		Update("is_active", false).Error)

	_, err = service.ResolveApiKey(ctx, created.Key)
	assert.ErrorIs(t, err, utils.ErrInvalidApiKey)
}

func TestResolveApiKey_RejectsKeyOfDisabledAccount(t *testing.T) {
	service, db := newAccountFixture(t)
	ctx := context.Background()
	account := seedAccount(t, db)

	created, err := service.CreateApiKey(ctx, account.ID, "stale")
	require.NoError(t, err)

	require.NoError(t, db.Model(&db_models.Account{}).
		Where("id = ?", account.ID).
		Update("is_active", false).Error)

	_, err = service.ResolveApiKey(ctx, created.Key)
	assert.ErrorIs(t, err, utils.ErrInvalidApiKey)
}
