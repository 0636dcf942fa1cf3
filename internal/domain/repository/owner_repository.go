package repository

import (
	"context"

	"stempel/internal/domain/entity"
	"stempel/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for owner-account persistence.
var (
	// ErrOwnerNotFound is returned when an owner account is not found.
	ErrOwnerNotFound = errors.New("store owner not found")
	// ErrDuplicateOwner is returned when the email is already registered.
	ErrDuplicateOwner = errors.New("store owner already exists")
)

// OwnerRepository defines the interface for store-owner database operations.
type OwnerRepository interface {
	// CreateOwner persists a new owner account.
	CreateOwner(ctx context.Context, owner *entity.StoreOwner) error

	// FindOwnerByEmail retrieves an owner by login email.
	FindOwnerByEmail(ctx context.Context, email string) (*entity.StoreOwner, error)

	// FindOwnerByID retrieves an owner by its unique ID.
	FindOwnerByID(ctx context.Context, id uuid.UUID) (*entity.StoreOwner, error)
}
