package impl

import (
	"context"
	"testing"

	"stempel/internal/domain/entity"
	"stempel/internal/domain/repository"
	"stempel/internal/domain/service"
	mockRepo "stempel/internal/mocks/repository"
	mockService "stempel/internal/mocks/service"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// effectsServiceFixtures holds all test dependencies for scan effects tests.
type effectsServiceFixtures struct {
	service             usecase.ScanEffectsUsecase
	accountRepo         *mockRepo.MockAccountRepository
	ledgerRepo          *mockRepo.MockLedgerRepository
	referralRepo        *mockRepo.MockReferralRepository
	walletPassRepo      *mockRepo.MockWalletPassRepository
	txManager           *mockRepo.MockTransactionManager
	notificationService *mockService.MockNotificationService
}

func createTestEffectsService(t *testing.T) effectsServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	referralRepo := mockRepo.NewMockReferralRepository(t)
	walletPassRepo := mockRepo.NewMockWalletPassRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	notificationService := mockService.NewMockNotificationService(t)

	service := NewScanEffectsService(ScanEffectsServiceParams{
		AccountRepo:         accountRepo,
		LedgerRepo:          ledgerRepo,
		ReferralRepo:        referralRepo,
		WalletPassRepo:      walletPassRepo,
		TxManager:           txManager,
		NotificationService: notificationService,
		Config:              newTestConfig(),
		Logger:              newDiscardLogger(),
	})

	return effectsServiceFixtures{
		service:             service,
		accountRepo:         accountRepo,
		ledgerRepo:          ledgerRepo,
		referralRepo:        referralRepo,
		walletPassRepo:      walletPassRepo,
		txManager:           txManager,
		notificationService: notificationService,
	}
}

func scanEvent(userID uuid.UUID) *service.ScanEvent {
	return &service.ScanEvent{
		TransactionID:  uuid.New().String(),
		UserID:         userID.String(),
		StoreID:        uuid.New().String(),
		Points:         2,
		NewBalance:     12,
		LifetimePoints: 102,
		PreviousTier:   string(entity.TierStarter),
		NewTier:        string(entity.TierStarter),
	}
}

// expectEffectsTx wires the transaction manager so the referral payout
// callback runs against the repository mocks.
func expectEffectsTx(t *testing.T, fx effectsServiceFixtures) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ReferralRepo().Return(fx.referralRepo)
	factory.EXPECT().LedgerRepo().Return(fx.ledgerRepo).Maybe()
	factory.EXPECT().AccountRepo().Return(fx.accountRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// expectWalletRefresh wires the read-recompute-upsert pass that follows every
// scan event.
func expectWalletRefresh(ctx context.Context, fx effectsServiceFixtures, userID uuid.UUID, lifetime, balance int) {
	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(&entity.LoyaltyAccount{ID: userID, LifetimePoints: lifetime}, nil).
		Once()
	fx.ledgerRepo.EXPECT().CurrentBalance(ctx, userID).Return(balance, nil)
	fx.walletPassRepo.EXPECT().
		UpsertPass(ctx, mock.AnythingOfType("*entity.WalletPass")).
		Return(nil)
}

func TestScanEffectsService_HandleScanEvent_NoPendingReferral(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.referralRepo.EXPECT().
		FindPendingByReferee(ctx, userID).
		Return(nil, repository.ErrReferralNotFound)
	expectWalletRefresh(ctx, fx, userID, 102, 12)

	err := fx.service.HandleScanEvent(ctx, scanEvent(userID))
	require.NoError(t, err)
}

func TestScanEffectsService_HandleScanEvent_PaysOutReferral(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	refereeID := uuid.New()
	referrerID := uuid.New()
	referral := &entity.Referral{
		ID:         uuid.New(),
		ReferrerID: referrerID,
		RefereeID:  refereeID,
		Code:       "FREUNDE10",
	}

	fx.referralRepo.EXPECT().FindPendingByReferee(ctx, refereeID).Return(referral, nil)

	expectEffectsTx(t, fx)
	fx.referralRepo.EXPECT().MarkCompleted(ctx, referral.ID).Return(true, nil)

	// Referee gets the referral points, referrer the bonus; both feed the
	// lifetime counters.
	fx.ledgerRepo.EXPECT().
		AppendTransaction(ctx, mock.MatchedBy(func(tx *entity.PointTransaction) bool {
			return tx.UserID == refereeID && tx.Points == 10 && tx.Source == entity.SourceReferral
		})).
		Return(nil)
	fx.accountRepo.EXPECT().IncrementLifetimePoints(ctx, refereeID, 10).Return(nil)
	fx.ledgerRepo.EXPECT().
		AppendTransaction(ctx, mock.MatchedBy(func(tx *entity.PointTransaction) bool {
			return tx.UserID == referrerID && tx.Points == 20 && tx.Source == entity.SourceReferralBonus
		})).
		Return(nil)
	fx.accountRepo.EXPECT().IncrementLifetimePoints(ctx, referrerID, 20).Return(nil)

	expectWalletRefresh(ctx, fx, refereeID, 112, 22)

	err := fx.service.HandleScanEvent(ctx, scanEvent(refereeID))
	require.NoError(t, err)
}

func TestScanEffectsService_HandleScanEvent_RedeliverySkipsPaidReferral(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	refereeID := uuid.New()
	referral := &entity.Referral{
		ID:         uuid.New(),
		ReferrerID: uuid.New(),
		RefereeID:  refereeID,
	}

	fx.referralRepo.EXPECT().FindPendingByReferee(ctx, refereeID).Return(referral, nil)

	// A concurrent delivery already flipped CompletedAt: no payout entries.
	expectEffectsTx(t, fx)
	fx.referralRepo.EXPECT().MarkCompleted(ctx, referral.ID).Return(false, nil)

	expectWalletRefresh(ctx, fx, refereeID, 102, 12)

	err := fx.service.HandleScanEvent(ctx, scanEvent(refereeID))
	require.NoError(t, err)
}

func TestScanEffectsService_HandleScanEvent_WalletRefreshFailureRetries(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.referralRepo.EXPECT().
		FindPendingByReferee(ctx, userID).
		Return(nil, repository.ErrReferralNotFound)
	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(&entity.LoyaltyAccount{ID: userID}, nil)
	fx.ledgerRepo.EXPECT().
		CurrentBalance(ctx, userID).
		Return(0, errors.New("connection reset"))

	err := fx.service.HandleScanEvent(ctx, scanEvent(userID))
	require.Error(t, err)
}

func TestScanEffectsService_HandleScanEvent_LevelChangePush(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	userID := uuid.New()

	event := scanEvent(userID)
	event.PreviousTier = string(entity.TierStarter)
	event.NewTier = string(entity.TierBronze)

	fx.referralRepo.EXPECT().
		FindPendingByReferee(ctx, userID).
		Return(nil, repository.ErrReferralNotFound)
	expectWalletRefresh(ctx, fx, userID, 102, 12)

	// The push path re-reads the account for its current FCM token.
	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(&entity.LoyaltyAccount{ID: userID, LifetimePoints: 102, FCMToken: "fcm-token"}, nil).
		Once()
	fx.notificationService.EXPECT().
		SendSingleNotification(ctx, "fcm-token", "Level up!", mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	err := fx.service.HandleScanEvent(ctx, event)
	require.NoError(t, err)
}

func TestScanEffectsService_HandleScanEvent_PushFailureIsSwallowed(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	userID := uuid.New()

	event := scanEvent(userID)
	event.NewTier = string(entity.TierBronze)

	fx.referralRepo.EXPECT().
		FindPendingByReferee(ctx, userID).
		Return(nil, repository.ErrReferralNotFound)
	expectWalletRefresh(ctx, fx, userID, 102, 12)
	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(&entity.LoyaltyAccount{ID: userID, FCMToken: "fcm-token"}, nil).
		Once()
	fx.notificationService.EXPECT().
		SendSingleNotification(ctx, "fcm-token", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	err := fx.service.HandleScanEvent(ctx, event)
	require.NoError(t, err)
}

func TestScanEffectsService_HandleScanEvent_NoPushWithoutToken(t *testing.T) {
	fx := createTestEffectsService(t)

	ctx := context.Background()
	userID := uuid.New()

	event := scanEvent(userID)
	event.NewTier = string(entity.TierBronze)

	fx.referralRepo.EXPECT().
		FindPendingByReferee(ctx, userID).
		Return(nil, repository.ErrReferralNotFound)

	// Both the wallet refresh and the push path read the account; neither
	// sends anything when the token is empty.
	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(&entity.LoyaltyAccount{ID: userID, LifetimePoints: 102}, nil).
		Twice()
	fx.ledgerRepo.EXPECT().CurrentBalance(ctx, userID).Return(12, nil)
	fx.walletPassRepo.EXPECT().
		UpsertPass(ctx, mock.AnythingOfType("*entity.WalletPass")).
		Return(nil)

	err := fx.service.HandleScanEvent(ctx, event)
	require.NoError(t, err)
}

func TestScanEffectsService_HandleScanEvent_DropsMalformedEvent(t *testing.T) {
	fx := createTestEffectsService(t)

	event := scanEvent(uuid.New())
	event.UserID = "not-a-uuid"

	// No retries for an event that can never succeed.
	err := fx.service.HandleScanEvent(context.Background(), event)
	require.NoError(t, err)
}
