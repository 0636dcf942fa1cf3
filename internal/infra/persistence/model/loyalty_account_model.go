package model

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyAccountModel is the GORM-specific struct for the 'loyalty_accounts' table.
// LifetimePoints is a monotonic counter; the spendable balance lives in the
// ledger and is never stored here.
type LoyaltyAccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(255);not null"`
	LifetimePoints int       `gorm:"not null;default:0"`
	FCMToken       string    `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyAccountModel) TableName() string {
	return "loyalty_accounts"
}
