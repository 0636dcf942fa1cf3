package usecase

import (
	"context"
	"time"

	"stempel/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampaignInput defines the data required to launch a campaign.
type CreateCampaignInput struct {
	StoreID         uuid.UUID
	Name            string
	Multiplier      int
	ExtraPoints     int
	DailyLimit      int
	DiscountPercent int
	StartDate       time.Time
	EndDate         time.Time
}

// CampaignUsecase defines the interface for owner-side campaign management.
// Reads perform lazy expiry: a campaign whose end date has passed gets its
// stored status flipped to expired before it is returned.
type CampaignUsecase interface {
	// CreateCampaign launches a new campaign for an owned store.
	CreateCampaign(ctx context.Context, ownerID uuid.UUID, input CreateCampaignInput) (*entity.Campaign, error)

	// GetCampaign retrieves one campaign of an owned store.
	GetCampaign(ctx context.Context, ownerID, storeID, campaignID uuid.UUID) (*entity.Campaign, error)

	// ListCampaigns retrieves all campaigns of an owned store, newest first.
	ListCampaigns(ctx context.Context, ownerID, storeID uuid.UUID) ([]*entity.Campaign, error)

	// DeactivateCampaign flips an owned campaign to inactive.
	DeactivateCampaign(ctx context.Context, ownerID, storeID, campaignID uuid.UUID) error
}
