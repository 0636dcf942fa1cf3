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

// suspiciousScanRepository implements the repository.SuspiciousScanRepository interface.
type suspiciousScanRepository struct {
	db *gorm.DB
}

// NewSuspiciousScanRepository is the constructor for suspiciousScanRepository.
func NewSuspiciousScanRepository(db *gorm.DB) repository.SuspiciousScanRepository {
	return &suspiciousScanRepository{
		db: db,
	}
}

// CreateSuspiciousScan persists a flagged scan for review.
func (repo *suspiciousScanRepository) CreateSuspiciousScan(ctx context.Context, scan *entity.SuspiciousScan) error {
	scanM := fromSuspiciousScanDomain(scan)

	if err := repo.db.WithContext(ctx).Create(scanM).Error; err != nil {
		return errors.Wrap(err, "failed to create suspicious scan")
	}

	scan.ID = scanM.ID
	scan.CreatedAt = scanM.CreatedAt

	return nil
}

// FindSuspiciousScansByStore lists flagged scans of a store, newest first.
func (repo *suspiciousScanRepository) FindSuspiciousScansByStore(ctx context.Context, storeID uuid.UUID, status entity.ReviewStatus, limit, offset int) ([]*entity.SuspiciousScan, error) {
	query := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var scanModels []*model.SuspiciousScanModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&scanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find suspicious scans by store")
	}

	scans := make([]*entity.SuspiciousScan, 0, len(scanModels))
	for _, scanM := range scanModels {
		scans = append(scans, toSuspiciousScanDomain(scanM))
	}

	return scans, nil
}

// FindSuspiciousScanByID retrieves one flagged scan.
func (repo *suspiciousScanRepository) FindSuspiciousScanByID(ctx context.Context, id uuid.UUID) (*entity.SuspiciousScan, error) {
	var scanM model.SuspiciousScanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&scanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSuspiciousScanNotFound
		}

		return nil, errors.Wrap(err, "failed to find suspicious scan by ID")
	}

	return toSuspiciousScanDomain(&scanM), nil
}

// UpdateSuspiciousScanStatus moves a flagged scan through the review lifecycle.
func (repo *suspiciousScanRepository) UpdateSuspiciousScanStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SuspiciousScanModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update suspicious scan status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSuspiciousScanNotFound
	}

	return nil
}

// toSuspiciousScanDomain converts a GORM model to a domain entity.
func toSuspiciousScanDomain(data *model.SuspiciousScanModel) *entity.SuspiciousScan {
	if data == nil {
		return nil
	}

	return &entity.SuspiciousScan{
		ID:             data.ID,
		StoreID:        data.StoreID,
		UserID:         data.UserID,
		ScanLatitude:   data.ScanLatitude,
		ScanLongitude:  data.ScanLongitude,
		StoreLatitude:  data.StoreLatitude,
		StoreLongitude: data.StoreLongitude,
		DistanceMeters: data.DistanceMeters,
		Reason:         entity.SuspiciousReason(data.Reason),
		Status:         entity.ReviewStatus(data.Status),
		CreatedAt:      data.CreatedAt,
	}
}

// fromSuspiciousScanDomain converts a domain entity to a GORM model.
func fromSuspiciousScanDomain(data *entity.SuspiciousScan) *model.SuspiciousScanModel {
	if data == nil {
		return nil
	}

	return &model.SuspiciousScanModel{
		ID:             data.ID,
		StoreID:        data.StoreID,
		UserID:         data.UserID,
		ScanLatitude:   data.ScanLatitude,
		ScanLongitude:  data.ScanLongitude,
		StoreLatitude:  data.StoreLatitude,
		StoreLongitude: data.StoreLongitude,
		DistanceMeters: data.DistanceMeters,
		Reason:         string(data.Reason),
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
	}
}
