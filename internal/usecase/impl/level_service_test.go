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
	"github.com/stretchr/testify/require"
)

// levelServiceFixtures holds all test dependencies for level service tests.
type levelServiceFixtures struct {
	service     usecase.LevelUsecase
	accountRepo *mockRepo.MockAccountRepository
	ledgerRepo  *mockRepo.MockLedgerRepository
}

func createTestLevelService(t *testing.T) levelServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)

	service := NewLevelService(LevelServiceParams{
		AccountRepo: accountRepo,
		LedgerRepo:  ledgerRepo,
	})

	return levelServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func TestLevelService_GetLevel(t *testing.T) {
	fx := createTestLevelService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(&entity.LoyaltyAccount{ID: userID, LifetimePoints: 650}, nil)
	fx.ledgerRepo.EXPECT().CurrentBalance(ctx, userID).Return(48, nil)

	output, err := fx.service.GetLevel(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 650, output.LifetimePoints)
	assert.Equal(t, 48, output.Balance)
	assert.Equal(t, entity.TierSilver, output.Status.Tier)
	assert.True(t, output.Status.VIPEligible)
}

func TestLevelService_GetLevel_BalanceUnaffectedByRedemptions(t *testing.T) {
	fx := createTestLevelService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Lifetime stays high even when the spendable balance was redeemed away.
	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(&entity.LoyaltyAccount{ID: userID, LifetimePoints: 2400}, nil)
	fx.ledgerRepo.EXPECT().CurrentBalance(ctx, userID).Return(0, nil)

	output, err := fx.service.GetLevel(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPlatinum, output.Status.Tier)
	assert.Zero(t, output.Balance)
}

func TestLevelService_GetLevel_NoAccount(t *testing.T) {
	fx := createTestLevelService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.GetLevel(ctx, userID)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}
