package usecase

import (
	"context"

	"stempel/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateStoreInput defines the data required to register a new store.
type CreateStoreInput struct {
	OwnerID           uuid.UUID
	ParentStoreID     *uuid.UUID
	Name              string
	Latitude          *float64
	Longitude         *float64
	MaxScanDistance   int
	MonitoringEnabled bool
	ScannerType       entity.ScannerType
	Country           string
}

// UpdateStoreInput defines the mutable store settings. Nil pointers leave the
// corresponding field untouched.
type UpdateStoreInput struct {
	Name              *string
	Latitude          *float64
	Longitude         *float64
	MaxScanDistance   *int
	MonitoringEnabled *bool
	ScannerType       *entity.ScannerType
	Country           *string
	IsActive          *bool
}

// --- Output DTOs ---

// DailyTokenOutput returns a freshly rotated daily scan token.
type DailyTokenOutput struct {
	Token     string
	StoreKey  string
	ExpiresAt string // RFC 3339, end of the store's calendar day.
}

// StoreUsecase defines the interface for owner-side store management.
type StoreUsecase interface {
	// CreateStore registers a new store under the owner and assigns its
	// public scan key.
	CreateStore(ctx context.Context, input CreateStoreInput) (*entity.Store, error)

	// GetStore retrieves one store, enforcing owner access.
	GetStore(ctx context.Context, ownerID, storeID uuid.UUID) (*entity.Store, error)

	// ListStores retrieves all stores of an owner.
	ListStores(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error)

	// ListFiliales retrieves the locations grouped under a parent store.
	ListFiliales(ctx context.Context, ownerID, parentID uuid.UUID) ([]*entity.Store, error)

	// UpdateStore applies the given settings to an owned store.
	UpdateStore(ctx context.Context, ownerID, storeID uuid.UUID, input UpdateStoreInput) (*entity.Store, error)

	// RotateDailyToken issues a new rotating daily scan token for the store.
	RotateDailyToken(ctx context.Context, ownerID, storeID uuid.UUID) (*DailyTokenOutput, error)

	// GenerateStoreQR renders the printable scan QR code (PNG) embedding the
	// store key and its current daily token.
	GenerateStoreQR(ctx context.Context, ownerID, storeID uuid.UUID) ([]byte, error)
}
