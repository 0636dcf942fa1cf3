package usecase

import (
	"context"

	"stempel/internal/domain/entity"

	"github.com/google/uuid"
)

// ListSuspiciousScansInput filters the review queue of a store.
type ListSuspiciousScansInput struct {
	StoreID uuid.UUID
	Status  entity.ReviewStatus // Empty means all statuses.
	Limit   int
	Offset  int
}

// FraudUsecase defines the interface for the owner-side review of flagged scans.
type FraudUsecase interface {
	// ListSuspiciousScans lists geofence-rejected scans of an owned store.
	ListSuspiciousScans(ctx context.Context, ownerID uuid.UUID, input ListSuspiciousScansInput) ([]*entity.SuspiciousScan, error)

	// ReviewSuspiciousScan moves a flagged scan to a new review status.
	ReviewSuspiciousScan(ctx context.Context, ownerID, scanID uuid.UUID, status entity.ReviewStatus) error
}
