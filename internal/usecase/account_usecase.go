package usecase

import (
	"context"

	"stempel/internal/domain/entity"

	"github.com/google/uuid"
)

// BalanceOutput returns the ledger-derived balance next to the monotonic
// lifetime counter.
type BalanceOutput struct {
	Balance        int
	LifetimePoints int
}

// RedeemInput defines a point redemption request.
type RedeemInput struct {
	UserID  uuid.UUID
	StoreID uuid.UUID
	Points  int // Positive amount to deduct.
}

// RedeemOutput returns the ledger entry and remaining balance after a redemption.
type RedeemOutput struct {
	TransactionID uuid.UUID
	NewBalance    int
}

// AccountUsecase defines the interface for customer-facing account operations.
type AccountUsecase interface {
	// GetBalance computes the user's spendable balance from the ledger.
	GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceOutput, error)

	// GetHistory returns the user's ledger entries, newest first.
	GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PointTransaction, error)

	// Redeem deducts points atomically. The balance check and the negative
	// ledger entry run in one transaction; lifetime points are never touched.
	Redeem(ctx context.Context, input RedeemInput) (*RedeemOutput, error)

	// RegisterFCMToken stores the push token used for level-change notices.
	RegisterFCMToken(ctx context.Context, userID uuid.UUID, token string) error
}
