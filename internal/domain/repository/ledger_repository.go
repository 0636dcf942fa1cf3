// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"stempel/internal/domain/entity"
	"stempel/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the point ledger.
var (
	// ErrDuplicateAccrual is returned when the atomic append hits the
	// one-qr-scan-per-(user,store,campaign,day) uniqueness guarantee.
	ErrDuplicateAccrual = errors.New("accrual already recorded for this day")
	// ErrTransactionNotFound is returned when a ledger entry is not found.
	ErrTransactionNotFound = errors.New("point transaction not found")
)

// LedgerRepository is the append-only point-transaction log. It is the single
// source of truth for balances and the authority on daily-accrual idempotency.
type LedgerRepository interface {
	// HasAccruedToday reports whether a qr_scan entry already exists for the
	// (user, store, campaign, day) tuple. Advisory early-exit only: the
	// authoritative guarantee is the unique constraint behind
	// AppendTransaction.
	HasAccruedToday(ctx context.Context, userID, storeID, campaignID uuid.UUID, day time.Time) (bool, error)

	// AppendTransaction atomically inserts a ledger entry. For qr_scan
	// entries a storage-level unique constraint makes the check-and-insert a
	// single atomic operation; a racing duplicate returns ErrDuplicateAccrual
	// and writes nothing.
	AppendTransaction(ctx context.Context, tx *entity.PointTransaction) error

	// CurrentBalance sums all transaction points for the user.
	CurrentBalance(ctx context.Context, userID uuid.UUID) (int, error)

	// SumCampaignPointsForDay totals qr_scan points the campaign paid out on
	// the given calendar day, across all users. Feeds the daily-limit clamp.
	SumCampaignPointsForDay(ctx context.Context, campaignID uuid.UUID, day time.Time) (int, error)

	// FindTransactionsByUser returns the user's ledger entries, newest first.
	FindTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PointTransaction, error)
}
