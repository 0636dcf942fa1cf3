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

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// CreateStore persists a new store.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStoreKey
		}

		return errors.Wrap(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// FindStoreByKey retrieves a store by its public scan key.
func (repo *storeRepository) FindStoreByKey(ctx context.Context, key string) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by key")
	}

	return toStoreDomain(&storeM), nil
}

// FindStoresByOwner retrieves all stores managed by an owner account.
func (repo *storeRepository) FindStoresByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by owner")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// FindStoresByParent retrieves the filiale locations grouped under a parent store.
func (repo *storeRepository) FindStoresByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("parent_store_id = ?", parentID).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by parent")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// UpdateStore persists changes to an existing store.
func (repo *storeRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Select("name", "latitude", "longitude", "max_scan_distance", "monitoring_enabled",
			"scanner_type", "country", "is_active", "subscription_status", "updated_at").
		Updates(storeM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// toStoreDomain converts a GORM model to a domain entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		ParentStoreID:      data.ParentStoreID,
		Key:                data.Key,
		Name:               data.Name,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		MaxScanDistance:    data.MaxScanDistance,
		MonitoringEnabled:  data.MonitoringEnabled,
		ScannerType:        entity.ScannerType(data.ScannerType),
		Country:            data.Country,
		IsActive:           data.IsActive,
		SubscriptionStatus: entity.SubscriptionStatus(data.SubscriptionStatus),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromStoreDomain converts a domain entity to a GORM model.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		ParentStoreID:      data.ParentStoreID,
		Key:                data.Key,
		Name:               data.Name,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		MaxScanDistance:    data.MaxScanDistance,
		MonitoringEnabled:  data.MonitoringEnabled,
		ScannerType:        string(data.ScannerType),
		Country:            data.Country,
		IsActive:           data.IsActive,
		SubscriptionStatus: string(data.SubscriptionStatus),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
