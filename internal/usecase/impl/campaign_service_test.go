package impl

import (
	"context"
	"testing"
	"time"

	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/repository"
	mockRepo "stempel/internal/mocks/repository"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// campaignServiceFixtures holds all test dependencies for campaign service tests.
type campaignServiceFixtures struct {
	service      usecase.CampaignUsecase
	campaignRepo *mockRepo.MockCampaignRepository
	storeRepo    *mockRepo.MockStoreRepository
}

func createTestCampaignService(t *testing.T) campaignServiceFixtures {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	service := NewCampaignService(CampaignServiceParams{
		CampaignRepo: campaignRepo,
		StoreRepo:    storeRepo,
		Logger:       newDiscardLogger(),
	})

	return campaignServiceFixtures{
		service:      service,
		campaignRepo: campaignRepo,
		storeRepo:    storeRepo,
	}
}

func expectOwnedStore(ctx context.Context, fx campaignServiceFixtures, ownerID, storeID uuid.UUID) {
	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
}

func TestCampaignService_CreateCampaign_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	now := time.Now()

	expectOwnedStore(ctx, fx, ownerID, storeID)
	fx.campaignRepo.EXPECT().
		CreateCampaign(ctx, mock.AnythingOfType("*entity.Campaign")).
		RunAndReturn(func(_ context.Context, campaign *entity.Campaign) error {
			assert.Equal(t, storeID, campaign.StoreID)
			assert.Equal(t, entity.CampaignStatusActive, campaign.Status)
			assert.NotEqual(t, uuid.Nil, campaign.ID)

			return nil
		})

	campaign, err := fx.service.CreateCampaign(ctx, ownerID, usecase.CreateCampaignInput{
		StoreID:    storeID,
		Name:       "Stempelwoche",
		Multiplier: 2,
		DailyLimit: 50,
		StartDate:  now,
		EndDate:    now.Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "Stempelwoche", campaign.Name)
}

func TestCampaignService_CreateCampaign_ValidationRules(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name  string
		input usecase.CreateCampaignInput
	}{
		{
			"zero multiplier",
			usecase.CreateCampaignInput{Multiplier: 0, StartDate: now, EndDate: now.Add(time.Hour)},
		},
		{
			"negative extra points",
			usecase.CreateCampaignInput{Multiplier: 1, ExtraPoints: -1, StartDate: now, EndDate: now.Add(time.Hour)},
		},
		{
			"negative daily limit",
			usecase.CreateCampaignInput{Multiplier: 1, DailyLimit: -5, StartDate: now, EndDate: now.Add(time.Hour)},
		},
		{
			"end before start",
			usecase.CreateCampaignInput{Multiplier: 1, StartDate: now, EndDate: now.Add(-time.Hour)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCampaignService(t)

			ownerID := uuid.New()
			storeID := uuid.New()
			tt.input.StoreID = storeID
			expectOwnedStore(ctx, fx, ownerID, storeID)

			campaign, err := fx.service.CreateCampaign(ctx, ownerID, tt.input)
			assert.Nil(t, campaign)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestCampaignService_CreateCampaign_ForeignStore(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	campaign, err := fx.service.CreateCampaign(ctx, uuid.New(), usecase.CreateCampaignInput{
		StoreID:    storeID,
		Multiplier: 2,
	})
	assert.Nil(t, campaign)
	assert.Equal(t, domainerrors.ErrStoreNotFound, err)
}

func TestCampaignService_GetCampaign_LazyExpiry(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaign := &entity.Campaign{
		ID:        uuid.New(),
		StoreID:   storeID,
		StartDate: time.Now().Add(-10 * 24 * time.Hour),
		EndDate:   time.Now().Add(-3 * 24 * time.Hour),
		Status:    entity.CampaignStatusActive,
	}

	expectOwnedStore(ctx, fx, ownerID, storeID)
	fx.campaignRepo.EXPECT().FindCampaign(ctx, campaign.ID, storeID).Return(campaign, nil)
	fx.campaignRepo.EXPECT().
		UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignStatusExpired).
		Return(nil)

	got, err := fx.service.GetCampaign(ctx, ownerID, storeID, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusExpired, got.Status)
}

func TestCampaignService_GetCampaign_ExpiryWriteFailureStillReturnsExpired(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaign := &entity.Campaign{
		ID:        uuid.New(),
		StoreID:   storeID,
		StartDate: time.Now().Add(-10 * 24 * time.Hour),
		EndDate:   time.Now().Add(-3 * 24 * time.Hour),
		Status:    entity.CampaignStatusActive,
	}

	expectOwnedStore(ctx, fx, ownerID, storeID)
	fx.campaignRepo.EXPECT().FindCampaign(ctx, campaign.ID, storeID).Return(campaign, nil)
	fx.campaignRepo.EXPECT().
		UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignStatusExpired).
		Return(repository.ErrCampaignNotFound)

	got, err := fx.service.GetCampaign(ctx, ownerID, storeID, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusExpired, got.Status)
}

func TestCampaignService_ListCampaigns(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	now := time.Now()
	campaigns := []*entity.Campaign{
		{
			ID:        uuid.New(),
			StoreID:   storeID,
			StartDate: now.Add(-time.Hour),
			EndDate:   now.Add(72 * time.Hour),
			Status:    entity.CampaignStatusActive,
		},
		{
			ID:        uuid.New(),
			StoreID:   storeID,
			StartDate: now.Add(-10 * 24 * time.Hour),
			EndDate:   now.Add(-3 * 24 * time.Hour),
			Status:    entity.CampaignStatusExpired,
		},
	}

	expectOwnedStore(ctx, fx, ownerID, storeID)
	fx.campaignRepo.EXPECT().FindCampaignsByStore(ctx, storeID).Return(campaigns, nil)

	got, err := fx.service.ListCampaigns(ctx, ownerID, storeID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.CampaignStatusActive, got[0].Status)
	assert.Equal(t, entity.CampaignStatusExpired, got[1].Status)
}

func TestCampaignService_DeactivateCampaign(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaignID := uuid.New()

	expectOwnedStore(ctx, fx, ownerID, storeID)
	fx.campaignRepo.EXPECT().
		FindCampaign(ctx, campaignID, storeID).
		Return(&entity.Campaign{ID: campaignID, StoreID: storeID}, nil)
	fx.campaignRepo.EXPECT().
		UpdateCampaignStatus(ctx, campaignID, entity.CampaignStatusInactive).
		Return(nil)

	err := fx.service.DeactivateCampaign(ctx, ownerID, storeID, campaignID)
	require.NoError(t, err)
}

func TestCampaignService_DeactivateCampaign_NotFound(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaignID := uuid.New()

	expectOwnedStore(ctx, fx, ownerID, storeID)
	fx.campaignRepo.EXPECT().
		FindCampaign(ctx, campaignID, storeID).
		Return(nil, repository.ErrCampaignNotFound)

	err := fx.service.DeactivateCampaign(ctx, ownerID, storeID, campaignID)
	assert.Equal(t, domainerrors.ErrCampaignNotFound, err)
}
