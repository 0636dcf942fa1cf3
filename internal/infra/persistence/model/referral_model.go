package model

import (
	"time"

	"github.com/google/uuid"
)

// ReferralModel is the GORM-specific struct for the 'referrals' table.
// CompletedAt doubles as the payout idempotency guard: the mark-completed
// update only matches rows where it is still NULL.
type ReferralModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReferrerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	RefereeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Code        string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralModel) TableName() string {
	return "referrals"
}
