package service

import (
	"context"
)

// ScanEvent is published after a point accrual is durably committed. The
// worker derives all downstream effects from it: referral completion, wallet
// pass refresh and level-change notification. Consumers must be idempotent
// because pub/sub may redeliver.
type ScanEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing.
	TransactionID  string `json:"transaction_id"`
	UserID         string `json:"user_id"`
	StoreID        string `json:"store_id"`
	CampaignID     string `json:"campaign_id,omitempty"`
	Points         int    `json:"points"`
	NewBalance     int    `json:"new_balance"`
	LifetimePoints int    `json:"lifetime_points"`
	PreviousTier   string `json:"previous_tier"`
	NewTier        string `json:"new_tier"`
}

// EventPublisher defines the interface for publishing scan events to a
// message queue for async processing.
type EventPublisher interface {
	// PublishScanEvent publishes a committed-accrual event. Fire-and-forget
	// from the caller's perspective: failures are logged, never propagated
	// into the scan response.
	PublishScanEvent(ctx context.Context, event *ScanEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
