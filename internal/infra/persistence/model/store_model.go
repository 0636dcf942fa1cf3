// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
// It represents a participating retail location and its geofencing settings.
type StoreModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentStoreID      *uuid.UUID `gorm:"type:uuid;index"`
	Key                string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name               string     `gorm:"type:varchar(255);not null"`
	Latitude           *float64   `gorm:"type:decimal(10,7)"`
	Longitude          *float64   `gorm:"type:decimal(10,7)"`
	MaxScanDistance    int        `gorm:"not null;default:0"`
	MonitoringEnabled  bool       `gorm:"not null;default:true"`
	ScannerType        string     `gorm:"type:varchar(16);not null;default:'fixed'"`
	Country            string     `gorm:"type:char(2);not null;default:''"`
	IsActive           bool       `gorm:"not null;default:true"`
	SubscriptionStatus string     `gorm:"type:varchar(32);not null;default:'trial'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
