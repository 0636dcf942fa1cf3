package repository

import (
	"context"

	"stempel/internal/domain/entity"

	"github.com/google/uuid"
)

// WalletPassRepository keeps mobile wallet passes in sync with the ledger.
type WalletPassRepository interface {
	// UpsertPass creates or refreshes the pass for a user. Idempotent:
	// re-running for an already current pass is a no-op.
	UpsertPass(ctx context.Context, pass *entity.WalletPass) error

	// FindPassByUser retrieves the user's pass, or nil when none exists.
	FindPassByUser(ctx context.Context, userID uuid.UUID) (*entity.WalletPass, error)
}
