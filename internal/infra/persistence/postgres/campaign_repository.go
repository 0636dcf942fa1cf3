package postgres

import (
	"context"

	"stempel/internal/domain/entity"
	"stempel/internal/domain/repository"
	"stempel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// CreateCampaign persists a new campaign.
func (repo *campaignRepository) CreateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		return errors.Wrap(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// FindCampaign retrieves a campaign by ID, scoped to the given store. A
// campaign belonging to a different store reads as not found.
func (repo *campaignRepository) FindCampaign(ctx context.Context, id, storeID uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign")
	}

	return toCampaignDomain(&campaignM), nil
}

// FindCampaignsByStore retrieves all campaigns of a store, newest first.
func (repo *campaignRepository) FindCampaignsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find campaigns by store")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(campaignM))
	}

	return campaigns, nil
}

// UpdateCampaignStatus flips the stored lifecycle status.
func (repo *campaignRepository) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status entity.CampaignStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update campaign status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// toCampaignDomain converts a GORM model to a domain entity.
func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	return &entity.Campaign{
		ID:              data.ID,
		StoreID:         data.StoreID,
		Name:            data.Name,
		Multiplier:      data.Multiplier,
		ExtraPoints:     data.ExtraPoints,
		DailyLimit:      data.DailyLimit,
		DiscountPercent: data.DiscountPercent,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		Status:          entity.CampaignStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromCampaignDomain converts a domain entity to a GORM model.
func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:              data.ID,
		StoreID:         data.StoreID,
		Name:            data.Name,
		Multiplier:      data.Multiplier,
		ExtraPoints:     data.ExtraPoints,
		DailyLimit:      data.DailyLimit,
		DiscountPercent: data.DiscountPercent,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
