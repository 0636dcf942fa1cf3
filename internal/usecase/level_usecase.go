package usecase

import (
	"context"

	"stempel/internal/domain/entity"

	"github.com/google/uuid"
)

// LevelOutput combines the tier lookup with the counters it was derived from.
type LevelOutput struct {
	LifetimePoints int
	Balance        int
	Status         entity.TierStatus
}

// LevelUsecase defines the interface for loyalty level queries.
type LevelUsecase interface {
	// GetLevel resolves the user's current tier from lifetime points.
	GetLevel(ctx context.Context, userID uuid.UUID) (*LevelOutput, error)
}
