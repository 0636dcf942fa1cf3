package postgres

import (
	"context"

	"stempel/internal/domain/entity"
	"stempel/internal/domain/repository"
	"stempel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// walletPassRepository implements the repository.WalletPassRepository interface.
type walletPassRepository struct {
	db *gorm.DB
}

// NewWalletPassRepository is the constructor for walletPassRepository.
func NewWalletPassRepository(db *gorm.DB) repository.WalletPassRepository {
	return &walletPassRepository{
		db: db,
	}
}

// UpsertPass creates or refreshes the pass for a user.
func (repo *walletPassRepository) UpsertPass(ctx context.Context, pass *entity.WalletPass) error {
	passM := fromWalletPassDomain(pass)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance", "tier", "updated_at"}),
		}).
		Create(passM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert wallet pass")
	}

	return nil
}

// FindPassByUser retrieves the user's pass, or nil when none exists.
func (repo *walletPassRepository) FindPassByUser(ctx context.Context, userID uuid.UUID) (*entity.WalletPass, error) {
	var passM model.WalletPassModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&passM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find wallet pass")
	}

	return toWalletPassDomain(&passM), nil
}

// toWalletPassDomain converts a GORM model to a domain entity.
func toWalletPassDomain(data *model.WalletPassModel) *entity.WalletPass {
	if data == nil {
		return nil
	}

	return &entity.WalletPass{
		UserID:       data.UserID,
		SerialNumber: data.SerialNumber,
		Balance:      data.Balance,
		Tier:         entity.Tier(data.Tier),
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromWalletPassDomain converts a domain entity to a GORM model.
func fromWalletPassDomain(data *entity.WalletPass) *model.WalletPassModel {
	if data == nil {
		return nil
	}

	return &model.WalletPassModel{
		UserID:       data.UserID,
		SerialNumber: data.SerialNumber,
		Balance:      data.Balance,
		Tier:         string(data.Tier),
		UpdatedAt:    data.UpdatedAt,
	}
}
