// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"stempel/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProcessScanInput defines the data arriving with a QR scan request. Latitude
// and longitude are nil when the client could not or would not supply GPS data.
type ProcessScanInput struct {
	UserID        uuid.UUID
	StoreKey      string
	Token         string
	CampaignID    uuid.UUID // uuid.Nil when the scan carries no campaign.
	ScanLatitude  *float64
	ScanLongitude *float64
}

// --- Output DTOs ---

// ScanResult reports the outcome of a granted scan.
type ScanResult struct {
	TransactionID  uuid.UUID
	Points         int
	NewBalance     int
	LifetimePoints int
	Tier           entity.TierStatus
	Clamped        bool // True when the campaign daily limit reduced the grant.
}

// ScanUsecase defines the interface for the point accrual flow.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ScanUsecase interface {
	// ProcessScan runs the full accrual pipeline for one QR scan: store and
	// token resolution, geofence validation, the accrual decision and the
	// atomic ledger commit. Rejections come back as domain AppErrors; the
	// single hard failure is an unreachable ledger.
	ProcessScan(ctx context.Context, input ProcessScanInput) (*ScanResult, error)
}
