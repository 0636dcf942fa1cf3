// Package service defines domain service interfaces implemented by the infra layer.
package service

import (
	"context"

	"stempel/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidStoreToken is returned for any unusable scan token: empty,
// malformed, expired, or unknown. Callers must not distinguish the cases.
var ErrInvalidStoreToken = errors.New("invalid store token")

// StoreTokenService validates the token presented with a QR scan and resolves
// it to a store identity. Two kinds are accepted: a persistent per-store token
// (database backed) and a short-lived rotating daily token (self-contained).
type StoreTokenService interface {
	// VerifyStoreToken resolves a token to a store ID, or
	// ErrInvalidStoreToken on any failure.
	VerifyStoreToken(ctx context.Context, token string) (uuid.UUID, error)

	// GenerateDailyToken issues the rotating daily token for a store. Issued
	// tokens expire at the end of the store's calendar day.
	GenerateDailyToken(storeID uuid.UUID) (string, error)
}
