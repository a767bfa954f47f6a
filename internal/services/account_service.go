package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"hookify/internal/models/db_models"
	"hookify/internal/models/request_models"
	"hookify/internal/models/response_models"
	"hookify/internal/repositories"
	"hookify/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateApiKey(ctx context.Context, accountID uuid.UUID, name string) (response_models.ApiKeyResponse, error)
	ListApiKeys(ctx context.Context, accountID uuid.UUID) ([]response_models.ApiKeyResponse, error)
	ResolveApiKey(ctx context.Context, key string) (uuid.UUID, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	apiKeyRepo  repositories.ApiKeyRepository
	tokens      *utils.TokenManager
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	apiKeyRepo repositories.ApiKeyRepository,
	tokens *utils.TokenManager,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		apiKeyRepo:  apiKeyRepo,
		tokens:      tokens,
	}
}

// CreateAccount registers a new account with a FREE-tier subscription.
func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		FullName:     request.FullName,
		IsActive:     true,
	}

	if err := a.accountRepo.CreateWithSubscription(ctx, newAccount); err != nil {
		if repositories.IsUniqueViolation(err) {
			return utils.ErrEmailAlreadyExists
		}
		log.Printf("Account creation failed: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}
	if !account.IsActive {
		return "", utils.ErrAccountInactive
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateApiKey(ctx context.Context, accountID uuid.UUID, name string) (response_models.ApiKeyResponse, error) {
	raw, err := utils.GenerateApiKey()
	if err != nil {
		return response_models.ApiKeyResponse{}, utils.ErrDatabaseError
	}

	if name == "" {
		name = "Default Key"
	}

	key := &db_models.ApiKey{
		AccountID: accountID,
		Key:       raw,
		Name:      name,
		IsActive:  true,
	}
	if err := a.apiKeyRepo.Insert(ctx, key); err != nil {
		return response_models.ApiKeyResponse{}, utils.ErrDatabaseError
	}

	return response_models.ApiKeyResponse{
		ID:       key.ID.String(),
		Key:      key.Key,
		Name:     key.Name,
		IsActive: key.IsActive,
	}, nil
}

func (a *AccountService) ListApiKeys(ctx context.Context, accountID uuid.UUID) ([]response_models.ApiKeyResponse, error) {
	keys, err := a.apiKeyRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ApiKeyResponse, 0, len(keys))
	for _, key := range keys {
		resp := response_models.ApiKeyResponse{
			ID:       key.ID.String(),
			Key:      key.Key,
			Name:     key.Name,
			IsActive: key.IsActive,
		}
		if key.LastUsed != nil {
			resp.LastUsed = formatUnix(*key.LastUsed)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// ResolveApiKey maps an active API key to its account, recording the use.
func (a *AccountService) ResolveApiKey(ctx context.Context, key string) (uuid.UUID, error) {
	apiKey, err := a.apiKeyRepo.FindActiveByKey(ctx, key)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if apiKey == nil {
		return uuid.Nil, utils.ErrInvalidApiKey
	}

	account, err := a.accountRepo.FindById(ctx, apiKey.AccountID.String())
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if account == nil || !account.IsActive {
		return uuid.Nil, utils.ErrInvalidApiKey
	}

	if err := a.apiKeyRepo.TouchLastUsed(ctx, apiKey.ID); err != nil {
		log.Printf("Failed to update api key last_used: %v", err)
	}

	return apiKey.AccountID, nil
}
