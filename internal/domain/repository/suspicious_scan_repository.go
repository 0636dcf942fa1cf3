package repository

import (
	"context"

	"stempel/internal/domain/entity"
	"stempel/internal/errors"

	"github.com/google/uuid"
)

// ErrSuspiciousScanNotFound is returned when a suspicious-scan record is not found.
var ErrSuspiciousScanNotFound = errors.New("suspicious scan not found")

// SuspiciousScanRepository is the side-channel log of geofence-rejected scans.
// Writes never block or fail the accrual flow; the orchestrator treats every
// error from CreateSuspiciousScan as log-and-continue.
type SuspiciousScanRepository interface {
	// CreateSuspiciousScan persists a flagged scan for review.
	CreateSuspiciousScan(ctx context.Context, scan *entity.SuspiciousScan) error

	// FindSuspiciousScansByStore lists flagged scans of a store, optionally
	// filtered by review status (empty status means all), newest first.
	FindSuspiciousScansByStore(ctx context.Context, storeID uuid.UUID, status entity.ReviewStatus, limit, offset int) ([]*entity.SuspiciousScan, error)

	// FindSuspiciousScanByID retrieves one flagged scan.
	FindSuspiciousScanByID(ctx context.Context, id uuid.UUID) (*entity.SuspiciousScan, error)

	// UpdateSuspiciousScanStatus moves a flagged scan through the review
	// lifecycle.
	UpdateSuspiciousScanStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error
}
