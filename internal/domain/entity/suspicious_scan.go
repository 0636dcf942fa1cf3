package entity

import (
	"time"

	"github.com/google/uuid"
)

// SuspiciousReason classifies why a scan was flagged for review.
type SuspiciousReason string

const (
	// ReasonGPSDistance means the scan location was outside the store geofence.
	ReasonGPSDistance SuspiciousReason = "gps_distance"
	// ReasonWrongCountry means the scan classified into a different country
	// than the store's.
	ReasonWrongCountry SuspiciousReason = "wrong_country"
)

// ReviewStatus is the admin-review lifecycle state of a suspicious scan.
type ReviewStatus string

const (
	ReviewStatusNew       ReviewStatus = "new"
	ReviewStatusReviewed  ReviewStatus = "reviewed"
	ReviewStatusDismissed ReviewStatus = "dismissed"
	ReviewStatusBlocked   ReviewStatus = "blocked"
)

// SuspiciousScan records a geofence-rejected scan for later human review.
// It is written best-effort from the scan flow and mutated only by the
// owner review endpoints.
type SuspiciousScan struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	UserID         uuid.UUID
	ScanLatitude   float64
	ScanLongitude  float64
	StoreLatitude  *float64
	StoreLongitude *float64
	DistanceMeters *int // nil for country mismatches where no distance was computed.
	Reason         SuspiciousReason
	Status         ReviewStatus
	CreatedAt      time.Time
}
