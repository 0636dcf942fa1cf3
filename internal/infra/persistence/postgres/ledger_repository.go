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

// ledgerRepository implements the repository.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// HasAccruedToday reports whether a qr_scan entry already exists for the
// (user, store, campaign, day) tuple.
func (repo *ledgerRepository) HasAccruedToday(ctx context.Context, userID, storeID, campaignID uuid.UUID, day time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PointTransactionModel{}).
		Where("user_id = ? AND store_id = ? AND campaign_id = ? AND scan_day = ? AND source = ?",
			userID, storeID, campaignID, day, string(entity.SourceQRScan)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count daily accruals")
	}

	return count > 0, nil
}

// AppendTransaction atomically inserts a ledger entry. The partial unique
// index on qr_scan rows turns a racing duplicate into ErrDuplicateAccrual
// without writing anything.
func (repo *ledgerRepository) AppendTransaction(ctx context.Context, tx *entity.PointTransaction) error {
	transactionM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccrual
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "ledger entry references missing row")
		}

		return errors.Wrap(err, "failed to append ledger entry")
	}

	tx.ID = transactionM.ID
	tx.CreatedAt = transactionM.CreatedAt

	return nil
}

// CurrentBalance sums all transaction points for the user.
func (repo *ledgerRepository) CurrentBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	var balance int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PointTransactionModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&balance).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum user balance")
	}

	return int(balance), nil
}

// SumCampaignPointsForDay totals qr_scan points the campaign paid out on the
// given calendar day, across all users.
func (repo *ledgerRepository) SumCampaignPointsForDay(ctx context.Context, campaignID uuid.UUID, day time.Time) (int, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PointTransactionModel{}).
		Where("campaign_id = ? AND scan_day = ? AND source = ?",
			campaignID, day, string(entity.SourceQRScan)).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum campaign daily payout")
	}

	return int(total), nil
}

// FindTransactionsByUser returns the user's ledger entries, newest first.
func (repo *ledgerRepository) FindTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PointTransaction, error) {
	var transactionModels []*model.PointTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transactions by user")
	}

	transactions := make([]*entity.PointTransaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

// toTransactionDomain converts a GORM model to a domain entity.
func toTransactionDomain(data *model.PointTransactionModel) *entity.PointTransaction {
	if data == nil {
		return nil
	}

	return &entity.PointTransaction{
		ID:         data.ID,
		UserID:     data.UserID,
		StoreID:    data.StoreID,
		CampaignID: data.CampaignID,
		Points:     data.Points,
		Source:     entity.TransactionSource(data.Source),
		ScanDay:    data.ScanDay,
		CreatedAt:  data.CreatedAt,
	}
}

// fromTransactionDomain converts a domain entity to a GORM model. A zero
// ScanDay (non-scan sources) falls back to the UTC date of CreatedAt so the
// column stays non-null.
func fromTransactionDomain(data *entity.PointTransaction) *model.PointTransactionModel {
	if data == nil {
		return nil
	}

	scanDay := data.ScanDay
	if scanDay.IsZero() {
		createdAt := data.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		year, month, dayOfMonth := createdAt.UTC().Date()
		scanDay = time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
	}

	return &model.PointTransactionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		StoreID:    data.StoreID,
		CampaignID: data.CampaignID,
		Points:     data.Points,
		Source:     string(data.Source),
		ScanDay:    scanDay,
		CreatedAt:  data.CreatedAt,
	}
}
