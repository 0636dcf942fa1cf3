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

// ownerRepository implements the repository.OwnerRepository interface.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{
		db: db,
	}
}

// CreateOwner persists a new owner account.
func (repo *ownerRepository) CreateOwner(ctx context.Context, owner *entity.StoreOwner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOwner
		}

		return errors.Wrap(err, "failed to create store owner")
	}

	owner.ID = ownerM.ID
	owner.CreatedAt = ownerM.CreatedAt
	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// FindOwnerByEmail retrieves an owner by login email.
func (repo *ownerRepository) FindOwnerByEmail(ctx context.Context, email string) (*entity.StoreOwner, error) {
	var ownerM model.StoreOwnerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&ownerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by email")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindOwnerByID retrieves an owner by its unique ID.
func (repo *ownerRepository) FindOwnerByID(ctx context.Context, id uuid.UUID) (*entity.StoreOwner, error) {
	var ownerM model.StoreOwnerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ownerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by ID")
	}

	return toOwnerDomain(&ownerM), nil
}

// toOwnerDomain converts a GORM model to a domain entity.
func toOwnerDomain(data *model.StoreOwnerModel) *entity.StoreOwner {
	if data == nil {
		return nil
	}

	return &entity.StoreOwner{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromOwnerDomain converts a domain entity to a GORM model.
func fromOwnerDomain(data *entity.StoreOwner) *model.StoreOwnerModel {
	if data == nil {
		return nil
	}

	return &model.StoreOwnerModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
