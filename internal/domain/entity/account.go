package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyAccount is a customer identity holding loyalty state. The spendable
// balance is derived from the ledger and never stored here; LifetimePoints is
// an independent monotonic counter used for tier determination only.
type LoyaltyAccount struct {
	ID             uuid.UUID
	Email          string
	Name           string
	LifetimePoints int    // Monotonically non-decreasing; unaffected by redemptions.
	FCMToken       string // Optional push token for level-change notifications.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StoreOwner is a merchant account that manages one or more stores.
type StoreOwner struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
