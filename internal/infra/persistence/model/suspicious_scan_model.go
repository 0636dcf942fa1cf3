package model

import (
	"time"

	"github.com/google/uuid"
)

// SuspiciousScanModel is the GORM-specific struct for the 'suspicious_scans' table.
// It records geofence-rejected scans for owner review.
type SuspiciousScanModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID        uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ScanLatitude   float64   `gorm:"type:decimal(10,7);not null"`
	ScanLongitude  float64   `gorm:"type:decimal(10,7);not null"`
	StoreLatitude  *float64  `gorm:"type:decimal(10,7)"`
	StoreLongitude *float64  `gorm:"type:decimal(10,7)"`
	DistanceMeters *int
	Reason         string    `gorm:"type:varchar(32);not null"`
	Status         string    `gorm:"type:varchar(16);not null;default:'new';index"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SuspiciousScanModel) TableName() string {
	return "suspicious_scans"
}
