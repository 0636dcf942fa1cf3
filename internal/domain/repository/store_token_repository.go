package repository

import (
	"context"

	"stempel/internal/errors"

	"github.com/google/uuid"
)

// ErrStoreTokenNotFound is returned when no store matches a persistent token.
var ErrStoreTokenNotFound = errors.New("store token not found")

// StoreTokenRepository resolves persistent per-store scan tokens. Rotating
// daily tokens are self-contained JWTs and never touch this table.
type StoreTokenRepository interface {
	// FindStoreIDByToken resolves an unexpired persistent token to its store.
	FindStoreIDByToken(ctx context.Context, token string) (uuid.UUID, error)

	// ReplaceToken installs a new persistent token for the store, revoking
	// any previous one.
	ReplaceToken(ctx context.Context, storeID uuid.UUID, token string) error
}
