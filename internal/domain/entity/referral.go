package entity

import (
	"time"

	"github.com/google/uuid"
)

// Referral links a referrer to the account they invited. It completes once,
// on the referee's first successful scan, and pays out both sides through
// the ledger. CompletedAt doubles as the idempotency guard for the worker.
type Referral struct {
	ID          uuid.UUID
	ReferrerID  uuid.UUID
	RefereeID   uuid.UUID
	Code        string
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// Completed reports whether the referral has already been paid out.
func (r *Referral) Completed() bool {
	return r.CompletedAt != nil
}
