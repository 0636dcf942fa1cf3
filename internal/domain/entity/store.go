// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMaxScanDistance is the geofence radius in meters applied when a store
// has no explicit limit configured.
const DefaultMaxScanDistance = 500

// ScannerType describes how a store presents its QR code to customers.
type ScannerType string

const (
	// ScannerTypeFixed is a QR code mounted at the store location. Scans are
	// validated against the store coordinates.
	ScannerTypeFixed ScannerType = "fixed"
	// ScannerTypeMobile is a staff-held scanner (markets, delivery). GPS
	// validation is skipped entirely.
	ScannerTypeMobile ScannerType = "mobile"
)

// SubscriptionStatus is the billing state of a store's plan.
type SubscriptionStatus string

const (
	SubscriptionTrial          SubscriptionStatus = "trial"
	SubscriptionActive         SubscriptionStatus = "active"
	SubscriptionPendingPayment SubscriptionStatus = "pending_payment"
	SubscriptionCanceled       SubscriptionStatus = "canceled"
)

// Store represents a participating retail location and its geofencing config.
type Store struct {
	ID                 uuid.UUID          // The Global Unique Identifier (GUID) for the store.
	OwnerID            uuid.UUID          // The owner account managing this store.
	ParentStoreID      *uuid.UUID         // Optional parent for multi-location (filiale) grouping.
	Key                string             // Public store key embedded in scan QR codes and URLs.
	Name               string             // Display name of the store.
	Latitude           *float64           // Stored coordinates; nil when the store never set a location.
	Longitude          *float64           //
	MaxScanDistance    int                // Geofence radius in meters; 0 means use DefaultMaxScanDistance.
	MonitoringEnabled  bool               // When false, GPS validation is skipped for this store.
	ScannerType        ScannerType        // fixed or mobile.
	Country            string             // ISO 3166-1 alpha-2 country code, e.g. "DE".
	IsActive           bool               // Soft on/off switch controlled by the owner.
	SubscriptionStatus SubscriptionStatus // Billing state; canceled stores reject scans.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ScanDistanceLimit returns the effective geofence radius in meters.
func (s *Store) ScanDistanceLimit() int {
	if s.MaxScanDistance > 0 {
		return s.MaxScanDistance
	}

	return DefaultMaxScanDistance
}

// HasCoordinates reports whether the store has a stored location.
func (s *Store) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// AcceptsScans reports whether the store may currently award points.
// A canceled subscription closes the store for accrual; trial, active and
// pending_payment (grace period) all keep it open.
func (s *Store) AcceptsScans() bool {
	return s.IsActive && s.SubscriptionStatus != SubscriptionCanceled
}
