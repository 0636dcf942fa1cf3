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

type levelService struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
}

// LevelServiceParams holds dependencies for LevelService, injected by Fx.
type LevelServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	LedgerRepo  repository.LedgerRepository
}

// NewLevelService creates a new level service instance
func NewLevelService(params LevelServiceParams) usecase.LevelUsecase {
	return &levelService{
		accountRepo: params.AccountRepo,
		ledgerRepo:  params.LedgerRepo,
	}
}

// GetLevel resolves the user's current tier from lifetime points. The balance
// rides along so clients render level and balance from one call.
func (srv *levelService) GetLevel(ctx context.Context, userID uuid.UUID) (*usecase.LevelOutput, error) {
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

	return &usecase.LevelOutput{
		LifetimePoints: account.LifetimePoints,
		Balance:        balance,
		Status:         entity.TierFor(account.LifetimePoints),
	}, nil
}
