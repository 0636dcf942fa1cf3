package impl

import (
	"context"
	"testing"

	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/repository"
	mockRepo "stempel/internal/mocks/repository"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fraudServiceFixtures holds all test dependencies for fraud review tests.
type fraudServiceFixtures struct {
	service        usecase.FraudUsecase
	suspiciousRepo *mockRepo.MockSuspiciousScanRepository
	storeRepo      *mockRepo.MockStoreRepository
}

func createTestFraudService(t *testing.T) fraudServiceFixtures {
	suspiciousRepo := mockRepo.NewMockSuspiciousScanRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	service := NewFraudService(FraudServiceParams{
		SuspiciousRepo: suspiciousRepo,
		StoreRepo:      storeRepo,
	})

	return fraudServiceFixtures{
		service:        service,
		suspiciousRepo: suspiciousRepo,
		storeRepo:      storeRepo,
	}
}

func TestFraudService_ListSuspiciousScans(t *testing.T) {
	fx := createTestFraudService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	scans := []*entity.SuspiciousScan{
		{ID: uuid.New(), StoreID: storeID, Reason: entity.ReasonGPSDistance},
	}

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	fx.suspiciousRepo.EXPECT().
		FindSuspiciousScansByStore(ctx, storeID, entity.ReviewStatusNew, 50, 0).
		Return(scans, nil)

	got, err := fx.service.ListSuspiciousScans(ctx, ownerID, usecase.ListSuspiciousScansInput{
		StoreID: storeID,
		Status:  entity.ReviewStatusNew,
	})
	require.NoError(t, err)
	assert.Equal(t, scans, got)
}

func TestFraudService_ListSuspiciousScans_CapsLimit(t *testing.T) {
	fx := createTestFraudService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	fx.suspiciousRepo.EXPECT().
		FindSuspiciousScansByStore(ctx, storeID, entity.ReviewStatus(""), 200, 0).
		Return(nil, nil)

	_, err := fx.service.ListSuspiciousScans(ctx, ownerID, usecase.ListSuspiciousScansInput{
		StoreID: storeID,
		Limit:   9999,
		Offset:  -1,
	})
	require.NoError(t, err)
}

func TestFraudService_ListSuspiciousScans_ForeignStore(t *testing.T) {
	fx := createTestFraudService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	got, err := fx.service.ListSuspiciousScans(ctx, uuid.New(), usecase.ListSuspiciousScansInput{
		StoreID: storeID,
	})
	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrStoreNotFound, err)
}

func TestFraudService_ReviewSuspiciousScan(t *testing.T) {
	fx := createTestFraudService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	scanID := uuid.New()

	fx.suspiciousRepo.EXPECT().
		FindSuspiciousScanByID(ctx, scanID).
		Return(&entity.SuspiciousScan{ID: scanID, StoreID: storeID, Status: entity.ReviewStatusNew}, nil)
	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	fx.suspiciousRepo.EXPECT().
		UpdateSuspiciousScanStatus(ctx, scanID, entity.ReviewStatusDismissed).
		Return(nil)

	err := fx.service.ReviewSuspiciousScan(ctx, ownerID, scanID, entity.ReviewStatusDismissed)
	require.NoError(t, err)
}

func TestFraudService_ReviewSuspiciousScan_ForeignScanReadsAsNotFound(t *testing.T) {
	fx := createTestFraudService(t)

	ctx := context.Background()
	storeID := uuid.New()
	scanID := uuid.New()

	fx.suspiciousRepo.EXPECT().
		FindSuspiciousScanByID(ctx, scanID).
		Return(&entity.SuspiciousScan{ID: scanID, StoreID: storeID}, nil)
	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	err := fx.service.ReviewSuspiciousScan(ctx, uuid.New(), scanID, entity.ReviewStatusBlocked)
	assert.Equal(t, domainerrors.ErrSuspiciousScanNotFound, err)
}

func TestFraudService_ReviewSuspiciousScan_NotFound(t *testing.T) {
	fx := createTestFraudService(t)

	ctx := context.Background()
	scanID := uuid.New()

	fx.suspiciousRepo.EXPECT().
		FindSuspiciousScanByID(ctx, scanID).
		Return(nil, repository.ErrSuspiciousScanNotFound)

	err := fx.service.ReviewSuspiciousScan(ctx, uuid.New(), scanID, entity.ReviewStatusReviewed)
	assert.Equal(t, domainerrors.ErrSuspiciousScanNotFound, err)
}
