package repository

import (
	"context"

	"stempel/internal/domain/entity"
	"stempel/internal/errors"

	"github.com/google/uuid"
)

// ErrCampaignNotFound is returned when a campaign is not found, including when
// it exists but belongs to a different store.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository defines the interface for campaign-related database operations.
type CampaignRepository interface {
	// CreateCampaign persists a new campaign.
	CreateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// FindCampaign retrieves a campaign by ID, scoped to the given store.
	FindCampaign(ctx context.Context, id, storeID uuid.UUID) (*entity.Campaign, error)

	// FindCampaignsByStore retrieves all campaigns of a store, newest first.
	FindCampaignsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Campaign, error)

	// UpdateCampaignStatus flips the stored lifecycle status. Used both by
	// owner deactivation and by lazy expiry when a read observes a past end
	// date.
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status entity.CampaignStatus) error
}
