package model

import (
	"time"

	"github.com/google/uuid"
)

// PointTransactionModel is the GORM-specific struct for the 'point_transactions' table.
// The table is append-only. The partial unique index is the authority on the
// one-scan-per-(user,store,campaign,day) rule: a racing insert loses at the
// database, not in application code. CampaignID stores uuid.Nil instead of
// NULL for campaign-less scans because Postgres treats NULLs as distinct in
// unique indexes, which would defeat the constraint.
type PointTransactionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_daily_scan,where:source = 'qr_scan'"`
	StoreID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_daily_scan,where:source = 'qr_scan'"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_scan,where:source = 'qr_scan'"`
	Points     int       `gorm:"not null"`
	Source     string    `gorm:"type:varchar(32);not null"`
	ScanDay    time.Time `gorm:"type:date;not null;index;uniqueIndex:idx_daily_scan,where:source = 'qr_scan'"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PointTransactionModel) TableName() string {
	return "point_transactions"
}
