package repository

import (
	"context"

	"stempel/internal/domain/entity"
	"stempel/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDuplicateStoreKey is returned when a store key collides.
	ErrDuplicateStoreKey = errors.New("store key already exists")
)

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// CreateStore persists a new store.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindStoreByKey retrieves a store by its public scan key.
	FindStoreByKey(ctx context.Context, key string) (*entity.Store, error)

	// FindStoresByOwner retrieves all stores managed by an owner account.
	FindStoresByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error)

	// FindStoresByParent retrieves the filiale locations grouped under a
	// parent store.
	FindStoresByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Store, error)

	// UpdateStore persists changes to an existing store.
	UpdateStore(ctx context.Context, store *entity.Store) error
}
