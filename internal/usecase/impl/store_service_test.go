package impl

import (
	"context"
	"testing"

	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/repository"
	mockRepo "stempel/internal/mocks/repository"
	mockService "stempel/internal/mocks/service"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service      usecase.StoreUsecase
	storeRepo    *mockRepo.MockStoreRepository
	tokenService *mockService.MockStoreTokenService
	qrService    *mockService.MockQRCodeService
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	tokenService := mockService.NewMockStoreTokenService(t)
	qrService := mockService.NewMockQRCodeService(t)

	service := NewStoreService(StoreServiceParams{
		StoreRepo:         storeRepo,
		StoreTokenService: tokenService,
		QRCodeService:     qrService,
		Logger:            newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:      service,
		storeRepo:    storeRepo,
		tokenService: tokenService,
		qrService:    qrService,
	}
}

func TestStoreService_CreateStore_Defaults(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.storeRepo.EXPECT().
		CreateStore(ctx, mock.AnythingOfType("*entity.Store")).
		RunAndReturn(func(_ context.Context, store *entity.Store) error {
			assert.Equal(t, ownerID, store.OwnerID)
			assert.Len(t, store.Key, 16) // 8 random bytes, hex-encoded
			assert.Equal(t, entity.ScannerTypeFixed, store.ScannerType)
			assert.True(t, store.IsActive)
			assert.Equal(t, entity.SubscriptionTrial, store.SubscriptionStatus)

			return nil
		})

	store, err := fx.service.CreateStore(ctx, usecase.CreateStoreInput{
		OwnerID: ownerID,
		Name:    "Kiosk 42",
		Country: "DE",
	})
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "Kiosk 42", store.Name)
}

func TestStoreService_CreateStore_RetriesOnKeyCollision(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	keys := make([]string, 0, 2)

	fx.storeRepo.EXPECT().
		CreateStore(ctx, mock.AnythingOfType("*entity.Store")).
		RunAndReturn(func(_ context.Context, store *entity.Store) error {
			keys = append(keys, store.Key)
			if len(keys) == 1 {
				return repository.ErrDuplicateStoreKey
			}

			return nil
		}).
		Twice()

	store, err := fx.service.CreateStore(ctx, usecase.CreateStoreInput{
		OwnerID: uuid.New(),
		Name:    "Kiosk 42",
	})
	require.NoError(t, err)
	require.NotNil(t, store)
	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
	assert.Equal(t, keys[1], store.Key)
}

func TestStoreService_GetStore_ForeignStoreReadsAsNotFound(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()
	store := &entity.Store{ID: storeID, OwnerID: uuid.New()}

	fx.storeRepo.EXPECT().FindStoreByID(ctx, storeID).Return(store, nil)

	got, err := fx.service.GetStore(ctx, uuid.New(), storeID)
	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrStoreNotFound, err)
}

func TestStoreService_ListStores(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	stores := []*entity.Store{
		{ID: uuid.New(), OwnerID: ownerID},
		{ID: uuid.New(), OwnerID: ownerID},
	}

	fx.storeRepo.EXPECT().FindStoresByOwner(ctx, ownerID).Return(stores, nil)

	got, err := fx.service.ListStores(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, stores, got)
}

func TestStoreService_ListFiliales_ChecksParentOwnership(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	parentID := uuid.New()
	parent := &entity.Store{ID: parentID, OwnerID: ownerID}
	filiales := []*entity.Store{{ID: uuid.New(), OwnerID: ownerID, ParentStoreID: &parentID}}

	fx.storeRepo.EXPECT().FindStoreByID(ctx, parentID).Return(parent, nil)
	fx.storeRepo.EXPECT().FindStoresByParent(ctx, parentID).Return(filiales, nil)

	got, err := fx.service.ListFiliales(ctx, ownerID, parentID)
	require.NoError(t, err)
	assert.Equal(t, filiales, got)
}

func TestStoreService_UpdateStore_AppliesOnlyGivenFields(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	store := &entity.Store{
		ID:                storeID,
		OwnerID:           ownerID,
		Name:              "Kiosk 42",
		MaxScanDistance:   500,
		MonitoringEnabled: true,
		ScannerType:       entity.ScannerTypeFixed,
		Country:           "DE",
		IsActive:          true,
	}

	fx.storeRepo.EXPECT().FindStoreByID(ctx, storeID).Return(store, nil)
	fx.storeRepo.EXPECT().
		UpdateStore(ctx, mock.AnythingOfType("*entity.Store")).
		RunAndReturn(func(_ context.Context, updated *entity.Store) error {
			assert.Equal(t, "Kiosk 42 am Markt", updated.Name)
			assert.Equal(t, 250, updated.MaxScanDistance)
			// Untouched fields keep their values.
			assert.True(t, updated.MonitoringEnabled)
			assert.Equal(t, "DE", updated.Country)

			return nil
		})

	newName := "Kiosk 42 am Markt"
	newLimit := 250
	got, err := fx.service.UpdateStore(ctx, ownerID, storeID, usecase.UpdateStoreInput{
		Name:            &newName,
		MaxScanDistance: &newLimit,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kiosk 42 am Markt", got.Name)
}

func TestStoreService_RotateDailyToken(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	store := &entity.Store{ID: storeID, OwnerID: ownerID, Key: "kiosk-42"}

	fx.storeRepo.EXPECT().FindStoreByID(ctx, storeID).Return(store, nil)
	fx.tokenService.EXPECT().GenerateDailyToken(storeID).Return("fresh-token", nil)

	output, err := fx.service.RotateDailyToken(ctx, ownerID, storeID)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", output.Token)
	assert.Equal(t, "kiosk-42", output.StoreKey)
	assert.NotEmpty(t, output.ExpiresAt)
}

func TestStoreService_GenerateStoreQR(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	store := &entity.Store{ID: storeID, OwnerID: ownerID, Key: "kiosk-42"}
	pngBytes := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.storeRepo.EXPECT().FindStoreByID(ctx, storeID).Return(store, nil)
	fx.tokenService.EXPECT().GenerateDailyToken(storeID).Return("daily-token", nil)
	fx.qrService.EXPECT().GenerateScanQR("kiosk-42", "daily-token").Return(pngBytes, nil)

	qr, err := fx.service.GenerateStoreQR(ctx, ownerID, storeID)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, qr)
}

func TestStoreService_GenerateStoreQR_ForeignStore(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	qr, err := fx.service.GenerateStoreQR(ctx, uuid.New(), storeID)
	assert.Nil(t, qr)
	assert.Equal(t, domainerrors.ErrStoreNotFound, err)
}
