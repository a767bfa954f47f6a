package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GenerationType string

const (
	GenerationHook     GenerationType = "hook"
	GenerationCaption  GenerationType = "caption"
	GenerationHashtag  GenerationType = "hashtag"
	GenerationEmotion  GenerationType = "emotion"
	GenerationComplete GenerationType = "complete"
)

// Storage caps for the serialized request/response summaries.
const (
	GenerationInputLimit  = 4096
	GenerationOutputLimit = 8192
)

// Generation is an append-only accounting record of one metered call.
// Rows are never updated after creation.
type Generation struct {
	BaseModel
	AccountID  uuid.UUID      `gorm:"index;not null"`
	Type       GenerationType `gorm:"size:16;index;not null"`
	InputData  datatypes.JSON `gorm:"type:jsonb"`
	OutputData datatypes.JSON `gorm:"type:jsonb"`
	TokensUsed int            `gorm:"default:0"`

	Account *Account `gorm:"foreignKey:AccountID"`
}

// TypeCount is the aggregation row for usage-by-type queries.
type TypeCount struct {
	Type  GenerationType
	Count int64
}
