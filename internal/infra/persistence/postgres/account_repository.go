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

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// CreateAccount persists a new loyalty account.
func (repo *accountRepository) CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return errors.Wrap(err, "failed to create loyalty account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindAccountByID retrieves a loyalty account by its unique ID.
func (repo *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyAccount, error) {
	var accountM model.LoyaltyAccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// IncrementLifetimePoints adds amount to the monotonic lifetime counter. The
// increment happens in SQL so concurrent accruals never lose updates.
func (repo *accountRepository) IncrementLifetimePoints(ctx context.Context, id uuid.UUID, amount int) error {
	if amount <= 0 {
		return repository.ErrNegativeLifetimeDelta
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("id = ?", id).
		UpdateColumn("lifetime_points", gorm.Expr("lifetime_points + ?", amount))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment lifetime points")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdateFCMToken stores the push token used for level-change notices.
func (repo *accountRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("id = ?", id).
		Update("fcm_token", token)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// toAccountDomain converts a GORM model to a domain entity.
func toAccountDomain(data *model.LoyaltyAccountModel) *entity.LoyaltyAccount {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyAccount{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		LifetimePoints: data.LifetimePoints,
		FCMToken:       data.FCMToken,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain entity to a GORM model.
func fromAccountDomain(data *entity.LoyaltyAccount) *model.LoyaltyAccountModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyAccountModel{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		LifetimePoints: data.LifetimePoints,
		FCMToken:       data.FCMToken,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
