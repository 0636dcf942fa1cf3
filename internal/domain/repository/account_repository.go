package repository

import (
	"context"

	"stempel/internal/domain/entity"
	"stempel/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for loyalty account persistence.
var (
	// ErrAccountNotFound is returned when a loyalty account is not found.
	ErrAccountNotFound = errors.New("loyalty account not found")
	// ErrNegativeLifetimeDelta is returned when a caller attempts to decrease
	// lifetime points. The counter is monotonic by contract.
	ErrNegativeLifetimeDelta = errors.New("lifetime points can only increase")
)

// AccountRepository defines the interface for loyalty-account database operations.
type AccountRepository interface {
	// CreateAccount persists a new loyalty account.
	CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error

	// FindAccountByID retrieves a loyalty account by its unique ID.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyAccount, error)

	// IncrementLifetimePoints adds amount to the monotonic lifetime counter.
	// Rejects amount <= 0 with ErrNegativeLifetimeDelta.
	IncrementLifetimePoints(ctx context.Context, id uuid.UUID, amount int) error

	// UpdateFCMToken stores the push token used for level-change notices.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error
}
