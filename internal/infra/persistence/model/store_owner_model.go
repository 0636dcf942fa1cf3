package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreOwnerModel is the GORM-specific struct for the 'store_owners' table.
type StoreOwnerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreOwnerModel) TableName() string {
	return "store_owners"
}
