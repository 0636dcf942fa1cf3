package usecase

import (
	"context"

	"stempel/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterOwnerInput defines the data required to register a store owner.
type RegisterOwnerInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for an owner to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOwnerOutput returns the newly created owner's basic information.
type RegisterOwnerOutput struct {
	Owner *entity.StoreOwner
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Owner        *entity.StoreOwner
}

// RefreshOutput returns a fresh token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// OwnerUsecase defines the interface for owner authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type OwnerUsecase interface {
	RegisterOwner(ctx context.Context, input RegisterOwnerInput) (*RegisterOwnerOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)
}
