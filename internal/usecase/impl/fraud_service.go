package impl

import (
	"context"

	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/repository"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultReviewLimit = 50
	maxReviewLimit     = 200
)

type fraudService struct {
	suspiciousRepo repository.SuspiciousScanRepository
	storeRepo      repository.StoreRepository
}

// FraudServiceParams holds dependencies for FraudService, injected by Fx.
type FraudServiceParams struct {
	fx.In

	SuspiciousRepo repository.SuspiciousScanRepository
	StoreRepo      repository.StoreRepository
}

// NewFraudService creates a new fraud review service instance
func NewFraudService(params FraudServiceParams) usecase.FraudUsecase {
	return &fraudService{
		suspiciousRepo: params.SuspiciousRepo,
		storeRepo:      params.StoreRepo,
	}
}

// ListSuspiciousScans lists geofence-rejected scans of an owned store.
func (srv *fraudService) ListSuspiciousScans(ctx context.Context, ownerID uuid.UUID, input usecase.ListSuspiciousScansInput) ([]*entity.SuspiciousScan, error) {
	if err := srv.checkOwnership(ctx, ownerID, input.StoreID); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	if limit > maxReviewLimit {
		limit = maxReviewLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	scans, err := srv.suspiciousRepo.FindSuspiciousScansByStore(ctx, input.StoreID, input.Status, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find suspicious scans")
	}

	return scans, nil
}

// ReviewSuspiciousScan moves a flagged scan to a new review status.
func (srv *fraudService) ReviewSuspiciousScan(ctx context.Context, ownerID, scanID uuid.UUID, status entity.ReviewStatus) error {
	scan, err := srv.suspiciousRepo.FindSuspiciousScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, repository.ErrSuspiciousScanNotFound) {
			return domainerrors.ErrSuspiciousScanNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "find suspicious scan")
	}

	if err := srv.checkOwnership(ctx, ownerID, scan.StoreID); err != nil {
		// The scan exists but belongs to someone else's store.
		return domainerrors.ErrSuspiciousScanNotFound
	}

	if err := srv.suspiciousRepo.UpdateSuspiciousScanStatus(ctx, scanID, status); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "update suspicious scan status")
	}

	return nil
}

func (srv *fraudService) checkOwnership(ctx context.Context, ownerID, storeID uuid.UUID) error {
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
