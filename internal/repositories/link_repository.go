package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hookify/internal/models/db_models"
)

type LinkRepository interface {
	Insert(ctx context.Context, link *db_models.Link) error
	FindByCode(ctx context.Context, code string) (*db_models.Link, error)
	IncrementClicks(ctx context.Context, code string) (*db_models.Link, error)
	ListAll(ctx context.Context) ([]db_models.Link, error)
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{
		db: db,
	}
}

func (l *linkRepository) Insert(ctx context.Context, link *db_models.Link) error {
	return l.db.WithContext(ctx).Create(link).Error
}

func (l *linkRepository) FindByCode(ctx context.Context, code string) (*db_models.Link, error) {
	var link db_models.Link
	err := l.db.WithContext(ctx).First(&link, "code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &link, nil
}

// IncrementClicks bumps the counter in place and returns the link, or
// (nil, nil) when the code is unknown.
func (l *linkRepository) IncrementClicks(ctx context.Context, code string) (*db_models.Link, error) {
	res := l.db.WithContext(ctx).
		Model(&db_models.Link{}).
		Where("code = ?", code).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return l.FindByCode(ctx, code)
}

func (l *linkRepository) ListAll(ctx context.Context) ([]db_models.Link, error) {
	var links []db_models.Link
	err := l.db.WithContext(ctx).Order("created_at DESC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}
