package impl

import (
	"context"
	"testing"

	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/repository"
	mockRepo "stempel/internal/mocks/repository"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	ledgerRepo  *mockRepo.MockLedgerRepository
	txManager   *mockRepo.MockTransactionManager
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		LedgerRepo:  ledgerRepo,
		TxManager:   txManager,
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
	}
}

// expectRedeemTx wires the transaction manager so the redemption callback runs
// against the ledger mock.
func expectRedeemTx(t *testing.T, fx accountServiceFixtures) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().LedgerRepo().Return(fx.ledgerRepo)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAccountService_GetBalance(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(&entity.LoyaltyAccount{ID: userID, LifetimePoints: 420}, nil)
	fx.ledgerRepo.EXPECT().CurrentBalance(ctx, userID).Return(37, nil)

	output, err := fx.service.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 37, output.Balance)
	assert.Equal(t, 420, output.LifetimePoints)
}

func TestAccountService_GetBalance_NoAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.GetBalance(ctx, userID)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}

func TestAccountService_GetHistory_ClampsLimits(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	transactions := []*entity.PointTransaction{{ID: uuid.New(), UserID: userID}}

	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"zero limit uses default", 0, 0, 50, 0},
		{"negative limit uses default", -5, 0, 50, 0},
		{"oversized limit is capped", 1000, 0, 200, 0},
		{"negative offset is zeroed", 20, -3, 20, 0},
		{"sane values pass through", 20, 40, 20, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.ledgerRepo.EXPECT().
				FindTransactionsByUser(ctx, userID, tt.wantLimit, tt.wantOffset).
				Return(transactions, nil).
				Once()

			got, err := fx.service.GetHistory(ctx, userID, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, transactions, got)
		})
	}
}

func TestAccountService_Redeem_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	expectRedeemTx(t, fx)
	fx.ledgerRepo.EXPECT().CurrentBalance(ctx, userID).Return(50, nil)
	fx.ledgerRepo.EXPECT().
		AppendTransaction(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		RunAndReturn(func(_ context.Context, tx *entity.PointTransaction) error {
			assert.Equal(t, -20, tx.Points)
			assert.Equal(t, entity.SourceRedeem, tx.Source)
			assert.Equal(t, uuid.Nil, tx.CampaignID)
			assert.Equal(t, storeID, tx.StoreID)

			return nil
		})

	output, err := fx.service.Redeem(ctx, usecase.RedeemInput{
		UserID:  userID,
		StoreID: storeID,
		Points:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, output.NewBalance)
	assert.NotEqual(t, uuid.Nil, output.TransactionID)
}

func TestAccountService_Redeem_InsufficientBalance(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	// The balance check happens inside the transaction; no ledger entry is
	// appended when it fails.
	expectRedeemTx(t, fx)
	fx.ledgerRepo.EXPECT().CurrentBalance(ctx, userID).Return(10, nil)

	output, err := fx.service.Redeem(ctx, usecase.RedeemInput{
		UserID:  userID,
		StoreID: uuid.New(),
		Points:  20,
	})
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrInsufficientBalance, err)
}

func TestAccountService_Redeem_RejectsNonPositiveAmounts(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	for _, points := range []int{0, -5} {
		output, err := fx.service.Redeem(ctx, usecase.RedeemInput{
			UserID:  uuid.New(),
			StoreID: uuid.New(),
			Points:  points,
		})
		assert.Nil(t, output)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
}

func TestAccountService_RegisterFCMToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().UpdateFCMToken(ctx, userID, "fcm-token-123").Return(nil)

	err := fx.service.RegisterFCMToken(ctx, userID, "fcm-token-123")
	require.NoError(t, err)
}

func TestAccountService_RegisterFCMToken_NoAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().
		UpdateFCMToken(ctx, userID, "fcm-token-123").
		Return(repository.ErrAccountNotFound)

	err := fx.service.RegisterFCMToken(ctx, userID, "fcm-token-123")
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}
