package postgres

import (
	"context"
	"time"

	"stempel/internal/domain/repository"
	"stempel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storeTokenRepository implements the repository.StoreTokenRepository interface.
type storeTokenRepository struct {
	db *gorm.DB
}

// NewStoreTokenRepository is the constructor for storeTokenRepository.
func NewStoreTokenRepository(db *gorm.DB) repository.StoreTokenRepository {
	return &storeTokenRepository{
		db: db,
	}
}

// FindStoreIDByToken resolves a persistent token to its store.
func (repo *storeTokenRepository) FindStoreIDByToken(ctx context.Context, token string) (uuid.UUID, error) {
	var tokenM model.StoreTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, repository.ErrStoreTokenNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find store token")
	}

	return tokenM.StoreID, nil
}

// ReplaceToken installs a new persistent token for the store. The upsert on
// the store primary key revokes the previous token in the same statement.
func (repo *storeTokenRepository) ReplaceToken(ctx context.Context, storeID uuid.UUID, token string) error {
	tokenM := &model.StoreTokenModel{
		StoreID:   storeID,
		Token:     token,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
		}).
		Create(tokenM).Error; err != nil {
		return errors.Wrap(err, "failed to replace store token")
	}

	return nil
}
