package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hookify/internal/models/db_models"
)

type GenerationRepository interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID, page int, pageSize int) ([]db_models.Generation, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountByTypeSince(ctx context.Context, accountID uuid.UUID, since time.Time) ([]db_models.TypeCount, error)
}

type generationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{
		db: db,
	}
}

func (g *generationRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page int, pageSize int) ([]db_models.Generation, error) {
	var generations []db_models.Generation
	err := g.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&generations).Error
	if err != nil {
		return nil, err
	}
	return generations, nil
}

func (g *generationRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&db_models.Generation{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

// CountByTypeSince groups the account's records by type within a window,
// most used type first.
func (g *generationRepository) CountByTypeSince(ctx context.Context, accountID uuid.UUID, since time.Time) ([]db_models.TypeCount, error) {
	var counts []db_models.TypeCount
	err := g.db.WithContext(ctx).
		Model(&db_models.Generation{}).
		Select("type, COUNT(*) AS count").
		Where("account_id = ? AND created_at >= ?", accountID, since.Unix()).
		Group("type").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
