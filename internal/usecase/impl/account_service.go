package impl

import (
	"context"
	"time"

	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/repository"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type accountService struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	txManager   repository.TransactionManager
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	LedgerRepo  repository.LedgerRepository
	TxManager   repository.TransactionManager
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		ledgerRepo:  params.LedgerRepo,
		txManager:   params.TxManager,
	}
}

// GetBalance computes the user's spendable balance from the ledger.
func (srv *accountService) GetBalance(ctx context.Context, userID uuid.UUID) (*usecase.BalanceOutput, error) {
	account, err := srv.accountRepo.FindAccountByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find loyalty account")
	}

	balance, err := srv.ledgerRepo.CurrentBalance(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "compute balance")
	}

	return &usecase.BalanceOutput{
		Balance:        balance,
		LifetimePoints: account.LifetimePoints,
	}, nil
}

// GetHistory returns the user's ledger entries, newest first.
func (srv *accountService) GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PointTransaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	transactions, err := srv.ledgerRepo.FindTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find transactions")
	}

	return transactions, nil
}

// Redeem deducts points atomically. Balance check and negative ledger entry
// run in one transaction so concurrent redemptions cannot overspend; lifetime
// points are never touched by redemptions.
func (srv *accountService) Redeem(ctx context.Context, input usecase.RedeemInput) (*usecase.RedeemOutput, error) {
	if input.Points <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("points must be positive")
	}

	transaction := &entity.PointTransaction{
		ID:         uuid.New(),
		UserID:     input.UserID,
		StoreID:    input.StoreID,
		CampaignID: uuid.Nil,
		Points:     -input.Points,
		Source:     entity.SourceRedeem,
		CreatedAt:  time.Now(),
	}

	var newBalance int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledgerRepo := repoFactory.LedgerRepo()

		balance, err := ledgerRepo.CurrentBalance(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "compute balance")
		}
		if balance < input.Points {
			return domainerrors.ErrInsufficientBalance
		}

		if err := ledgerRepo.AppendTransaction(ctx, transaction); err != nil {
			return errors.Wrap(err, "append redemption entry")
		}
		newBalance = balance - input.Points

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInsufficientBalance) {
			return nil, domainerrors.ErrInsufficientBalance
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "commit redemption")
	}

	return &usecase.RedeemOutput{
		TransactionID: transaction.ID,
		NewBalance:    newBalance,
	}, nil
}

// RegisterFCMToken stores the push token used for level-change notices.
func (srv *accountService) RegisterFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := srv.accountRepo.UpdateFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "update fcm token")
	}

	return nil
}
