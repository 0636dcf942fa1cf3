package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the stored lifecycle state of a campaign. The stored value
// is advisory only: expiry is always re-derived from EndDate at decision time.
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusInactive CampaignStatus = "inactive"
	CampaignStatusExpired  CampaignStatus = "expired"
)

// Campaign is a time-bound point boost belonging to exactly one store.
type Campaign struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	Name            string
	Multiplier      int // Point multiplier, >= 1.
	ExtraPoints     int // Flat extra points on top of the multiplied base, >= 0.
	DailyLimit      int // Max points the campaign pays out per calendar day; 0 means unlimited.
	DiscountPercent int // Advertised discount, informational for accrual.
	StartDate       time.Time
	EndDate         time.Time
	Status          CampaignStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ExpiredAt reports whether the campaign has ended before the calendar day of
// the given instant. A campaign whose stored status was never flipped to
// expired must still be treated as expired once its end date passed.
func (c *Campaign) ExpiredAt(now time.Time) bool {
	if c.Status == CampaignStatusExpired {
		return true
	}
	endDay := c.EndDate.Truncate(24 * time.Hour)
	nowDay := now.UTC().Truncate(24 * time.Hour)

	return endDay.Before(nowDay)
}

// Usable reports whether the campaign may boost a scan at the given instant.
func (c *Campaign) Usable(now time.Time) bool {
	return c.Status == CampaignStatusActive && !c.ExpiredAt(now) && !now.Before(c.StartDate)
}

// BasePoints computes the campaign-derived grant before VIP bonuses:
// one base point run through the multiplier plus flat extra points, floored at 1.
func (c *Campaign) BasePoints() int {
	points := c.Multiplier + c.ExtraPoints
	if points < 1 {
		return 1
	}

	return points
}
