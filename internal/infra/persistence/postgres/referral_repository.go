package postgres

import (
	"context"
	"time"

	"stempel/internal/domain/entity"
	"stempel/internal/domain/repository"
	"stempel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// referralRepository implements the repository.ReferralRepository interface.
type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(db *gorm.DB) repository.ReferralRepository {
	return &referralRepository{
		db: db,
	}
}

// CreateReferral persists a new referral link.
func (repo *referralRepository) CreateReferral(ctx context.Context, referral *entity.Referral) error {
	referralM := fromReferralDomain(referral)

	if err := repo.db.WithContext(ctx).Create(referralM).Error; err != nil {
		return errors.Wrap(err, "failed to create referral")
	}

	referral.ID = referralM.ID
	referral.CreatedAt = referralM.CreatedAt

	return nil
}

// FindPendingByReferee retrieves the open referral for an invited account.
func (repo *referralRepository) FindPendingByReferee(ctx context.Context, refereeID uuid.UUID) (*entity.Referral, error) {
	var referralM model.ReferralModel

	if err := repo.db.WithContext(ctx).
		Where("referee_id = ? AND completed_at IS NULL", refereeID).
		First(&referralM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferralNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending referral")
	}

	return toReferralDomain(&referralM), nil
}

// MarkCompleted stamps the referral as paid out. The completed_at IS NULL
// predicate makes the update a compare-and-set: only one caller ever sees a
// row flip, which is what keeps the payout idempotent under redelivery.
func (repo *referralRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ReferralModel{}).
		Where("id = ? AND completed_at IS NULL", id).
		Update("completed_at", time.Now())
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark referral completed")
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// No row flipped: either already completed or missing entirely.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReferralModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check referral existence")
	}
	if count == 0 {
		return false, repository.ErrReferralNotFound
	}

	return false, nil
}

// toReferralDomain converts a GORM model to a domain entity.
func toReferralDomain(data *model.ReferralModel) *entity.Referral {
	if data == nil {
		return nil
	}

	return &entity.Referral{
		ID:          data.ID,
		ReferrerID:  data.ReferrerID,
		RefereeID:   data.RefereeID,
		Code:        data.Code,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
	}
}

// fromReferralDomain converts a domain entity to a GORM model.
func fromReferralDomain(data *entity.Referral) *model.ReferralModel {
	if data == nil {
		return nil
	}

	return &model.ReferralModel{
		ID:          data.ID,
		ReferrerID:  data.ReferrerID,
		RefereeID:   data.RefereeID,
		Code:        data.Code,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
	}
}
