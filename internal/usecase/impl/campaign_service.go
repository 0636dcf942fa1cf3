package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "stempel/internal/delivery/context"
	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/repository"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type campaignService struct {
	campaignRepo repository.CampaignRepository
	storeRepo    repository.StoreRepository
	logger       *slog.Logger
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	CampaignRepo repository.CampaignRepository
	StoreRepo    repository.StoreRepository
	Logger       *slog.Logger
}

// NewCampaignService creates a new campaign service instance
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		campaignRepo: params.CampaignRepo,
		storeRepo:    params.StoreRepo,
		logger:       params.Logger,
	}
}

func (srv *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCampaign launches a new campaign for an owned store.
func (srv *campaignService) CreateCampaign(ctx context.Context, ownerID uuid.UUID, input usecase.CreateCampaignInput) (*entity.Campaign, error) {
	if err := srv.checkOwnership(ctx, ownerID, input.StoreID); err != nil {
		return nil, err
	}

	if input.Multiplier < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("multiplier must be at least 1")
	}
	if input.ExtraPoints < 0 || input.DailyLimit < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("extra points and daily limit must not be negative")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end date before start date")
	}

	campaign := &entity.Campaign{
		ID:              uuid.New(),
		StoreID:         input.StoreID,
		Name:            input.Name,
		Multiplier:      input.Multiplier,
		ExtraPoints:     input.ExtraPoints,
		DailyLimit:      input.DailyLimit,
		DiscountPercent: input.DiscountPercent,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Status:          entity.CampaignStatusActive,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := srv.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create campaign")
	}

	return campaign, nil
}

// GetCampaign retrieves one campaign of an owned store, applying lazy expiry.
func (srv *campaignService) GetCampaign(ctx context.Context, ownerID, storeID, campaignID uuid.UUID) (*entity.Campaign, error) {
	if err := srv.checkOwnership(ctx, ownerID, storeID); err != nil {
		return nil, err
	}

	campaign, err := srv.campaignRepo.FindCampaign(ctx, campaignID, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find campaign")
	}

	srv.expireLazily(ctx, campaign)

	return campaign, nil
}

// ListCampaigns retrieves all campaigns of an owned store, newest first.
func (srv *campaignService) ListCampaigns(ctx context.Context, ownerID, storeID uuid.UUID) ([]*entity.Campaign, error) {
	if err := srv.checkOwnership(ctx, ownerID, storeID); err != nil {
		return nil, err
	}

	campaigns, err := srv.campaignRepo.FindCampaignsByStore(ctx, storeID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find campaigns by store")
	}

	for _, campaign := range campaigns {
		srv.expireLazily(ctx, campaign)
	}

	return campaigns, nil
}

// DeactivateCampaign flips an owned campaign to inactive.
func (srv *campaignService) DeactivateCampaign(ctx context.Context, ownerID, storeID, campaignID uuid.UUID) error {
	if err := srv.checkOwnership(ctx, ownerID, storeID); err != nil {
		return err
	}

	if _, err := srv.campaignRepo.FindCampaign(ctx, campaignID, storeID); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domainerrors.ErrCampaignNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "find campaign")
	}

	if err := srv.campaignRepo.UpdateCampaignStatus(ctx, campaignID, entity.CampaignStatusInactive); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "update campaign status")
	}

	return nil
}

// expireLazily flips a stored status that lags behind a passed end date. The
// write is advisory; failures only delay the flip until the next read.
func (srv *campaignService) expireLazily(ctx context.Context, campaign *entity.Campaign) {
	if campaign.Status == entity.CampaignStatusExpired || !campaign.ExpiredAt(time.Now()) {
		return
	}

	if err := srv.campaignRepo.UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignStatusExpired); err != nil {
		srv.log(ctx).Warn("lazy campaign expiry failed",
			slog.String("campaign_id", campaign.ID.String()),
			slog.Any("error", err))
	}
	campaign.Status = entity.CampaignStatusExpired
}

// checkOwnership verifies the store exists and belongs to the caller.
func (srv *campaignService) checkOwnership(ctx context.Context, ownerID, storeID uuid.UUID) error {
	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "find store by id")
	}
	if store.OwnerID != ownerID {
		return domainerrors.ErrStoreNotFound
	}

	return nil
}
