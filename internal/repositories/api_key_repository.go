package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hookify/internal/models/db_models"
)

type ApiKeyRepository interface {
	Insert(ctx context.Context, key *db_models.ApiKey) error
	FindActiveByKey(ctx context.Context, key string) (*db_models.ApiKey, error)
	TouchLastUsed(ctx context.Context, id uuid.UUID) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.ApiKey, error)
}

type apiKeyRepository struct {
	db *gorm.DB
}

func NewApiKeyRepository(db *gorm.DB) ApiKeyRepository {
	return &apiKeyRepository{
		db: db,
	}
}

func (a *apiKeyRepository) Insert(ctx context.Context, key *db_models.ApiKey) error {
	return a.db.WithContext(ctx).Create(key).Error
}

func (a *apiKeyRepository) FindActiveByKey(ctx context.Context, key string) (*db_models.ApiKey, error) {
	var apiKey db_models.ApiKey
	err := a.db.WithContext(ctx).
		Where("key = ? AND is_active = ?", key, true).
		First(&apiKey).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &apiKey, nil
}

func (a *apiKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	return a.db.WithContext(ctx).
		Model(&db_models.ApiKey{}).
		Where("id = ?", id).
		UpdateColumn("last_used", time.Now().Unix()).Error
}

func (a *apiKeyRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.ApiKey, error) {
	var keys []db_models.ApiKey
	err := a.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
