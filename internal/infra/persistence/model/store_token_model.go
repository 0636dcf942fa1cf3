package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreTokenModel is the GORM-specific struct for the 'store_tokens' table.
// It holds the persistent per-store scan token; rotating daily tokens are
// self-contained JWTs and never touch this table. One row per store.
type StoreTokenModel struct {
	StoreID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Token     string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreTokenModel) TableName() string {
	return "store_tokens"
}
