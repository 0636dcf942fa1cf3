package repository

import (
	"context"

	"stempel/internal/domain/entity"
	"stempel/internal/errors"

	"github.com/google/uuid"
)

// ErrReferralNotFound is returned when a referral is not found.
var ErrReferralNotFound = errors.New("referral not found")

// ReferralRepository defines the interface for referral database operations.
type ReferralRepository interface {
	// CreateReferral persists a new referral link.
	CreateReferral(ctx context.Context, referral *entity.Referral) error

	// FindPendingByReferee retrieves the open referral for an invited
	// account, or ErrReferralNotFound when none is pending.
	FindPendingByReferee(ctx context.Context, refereeID uuid.UUID) (*entity.Referral, error)

	// MarkCompleted stamps the referral as paid out. Returns false when the
	// referral was already completed, which makes the worker-side payout
	// idempotent under event redelivery.
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)
}
