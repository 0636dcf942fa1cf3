package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel is the GORM-specific struct for the 'campaigns' table.
// A campaign is a time-bound point boost belonging to exactly one store.
type CampaignModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Multiplier      int       `gorm:"not null;default:1"`
	ExtraPoints     int       `gorm:"not null;default:0"`
	DailyLimit      int       `gorm:"not null;default:0"`
	DiscountPercent int       `gorm:"not null;default:0"`
	StartDate       time.Time `gorm:"not null"`
	EndDate         time.Time `gorm:"not null"`
	Status          string    `gorm:"type:varchar(16);not null;default:'active';index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
