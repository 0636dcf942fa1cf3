package entity

import (
	"time"

	"github.com/google/uuid"
)

// WalletPass mirrors a customer's balance and tier into their mobile wallet
// pass. Updated asynchronously after each committed accrual; the upsert is
// idempotent so event redeliveries are harmless.
type WalletPass struct {
	UserID       uuid.UUID
	SerialNumber string
	Balance      int
	Tier         Tier
	UpdatedAt    time.Time
}
