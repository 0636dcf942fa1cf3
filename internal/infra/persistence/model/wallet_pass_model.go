package model

import (
	"time"

	"github.com/google/uuid"
)

// WalletPassModel is the GORM-specific struct for the 'wallet_passes' table.
// One row per user, refreshed by the worker after each committed accrual.
type WalletPassModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primary_key"`
	SerialNumber string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Balance      int       `gorm:"not null;default:0"`
	Tier         string    `gorm:"type:varchar(16);not null;default:'starter'"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletPassModel) TableName() string {
	return "wallet_passes"
}
