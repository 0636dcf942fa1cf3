package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionSource identifies which flow appended a ledger entry.
type TransactionSource string

const (
	SourceQRScan        TransactionSource = "qr_scan"
	SourceRedeem        TransactionSource = "redeem"
	SourceReferral      TransactionSource = "referral"
	SourceReferralBonus TransactionSource = "referral_bonus"
	SourcePOSSale       TransactionSource = "pos_sale"
	SourceOfflineSync   TransactionSource = "offline_sync"
)

// PointTransaction is an immutable entry in the append-only point ledger.
// Negative Points values are redemptions/deductions. For qr_scan entries the
// storage layer enforces at most one row per (user, store, campaign, day).
type PointTransaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	StoreID    uuid.UUID
	CampaignID uuid.UUID // uuid.Nil when the scan was not tied to a campaign.
	Points     int       // Signed; negative = redemption.
	Source     TransactionSource
	ScanDay    time.Time // Accrual calendar day at UTC midnight; zero for non-scan sources.
	CreatedAt  time.Time
}

// IsAccrual reports whether the entry may contribute to lifetime points.
// Redemptions never do, regardless of sign.
func (t *PointTransaction) IsAccrual() bool {
	switch t.Source {
	case SourceQRScan, SourceReferral, SourceReferralBonus, SourcePOSSale, SourceOfflineSync:
		return t.Points > 0
	default:
		return false
	}
}
