package db_models

import (
	"github.com/google/uuid"
)

type ApiKey struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index;not null"`
	Key       string    `gorm:"size:64;uniqueIndex;not null"`
	Name      string    `gorm:"size:255;default:'Default Key'"`
	IsActive  bool      `gorm:"default:true"`
	LastUsed  *int64

	Account *Account `gorm:"foreignKey:AccountID"`
}
