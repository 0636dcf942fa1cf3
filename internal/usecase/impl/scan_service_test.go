package impl

import (
	"context"
	"testing"
	"time"

	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/geo"
	"stempel/internal/domain/repository"
	mockRepo "stempel/internal/mocks/repository"
	mockService "stempel/internal/mocks/service"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scanServiceFixtures holds all test dependencies for scan service tests.
type scanServiceFixtures struct {
	service        usecase.ScanUsecase
	storeRepo      *mockRepo.MockStoreRepository
	campaignRepo   *mockRepo.MockCampaignRepository
	accountRepo    *mockRepo.MockAccountRepository
	ledgerRepo     *mockRepo.MockLedgerRepository
	suspiciousRepo *mockRepo.MockSuspiciousScanRepository
	txManager      *mockRepo.MockTransactionManager
	tokenService   *mockService.MockStoreTokenService
	publisher      *mockService.MockEventPublisher
}

func createTestScanService(t *testing.T) scanServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	suspiciousRepo := mockRepo.NewMockSuspiciousScanRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenService := mockService.NewMockStoreTokenService(t)
	publisher := mockService.NewMockEventPublisher(t)

	cfg := newTestConfig()
	service, err := NewScanService(ScanServiceParams{
		StoreRepo:         storeRepo,
		CampaignRepo:      campaignRepo,
		AccountRepo:       accountRepo,
		LedgerRepo:        ledgerRepo,
		SuspiciousRepo:    suspiciousRepo,
		TxManager:         txManager,
		StoreTokenService: tokenService,
		Publisher:         publisher,
		Validator:         geo.NewValidator(nil),
		Policy:            NewAccrualPolicy(cfg.Loyalty),
		Config:            cfg,
		Logger:            newDiscardLogger(),
	})
	require.NoError(t, err)

	return scanServiceFixtures{
		service:        service,
		storeRepo:      storeRepo,
		campaignRepo:   campaignRepo,
		accountRepo:    accountRepo,
		ledgerRepo:     ledgerRepo,
		suspiciousRepo: suspiciousRepo,
		txManager:      txManager,
		tokenService:   tokenService,
		publisher:      publisher,
	}
}

// openStore returns a scannable store with GPS monitoring switched off, which
// keeps location out of the way for tests that target other rules.
func openStore() *entity.Store {
	return &entity.Store{
		ID:                 uuid.New(),
		OwnerID:            uuid.New(),
		Key:                "kiosk-42",
		Name:               "Kiosk 42",
		MonitoringEnabled:  false,
		ScannerType:        entity.ScannerTypeFixed,
		Country:            "DE",
		IsActive:           true,
		SubscriptionStatus: entity.SubscriptionActive,
	}
}

func scanInput(userID uuid.UUID) usecase.ProcessScanInput {
	return usecase.ProcessScanInput{
		UserID:   userID,
		StoreKey: "kiosk-42",
		Token:    "daily-token",
	}
}

// expectCommit wires the transaction manager to run the commit callback
// against the ledger and account mocks.
func expectCommit(t *testing.T, fx scanServiceFixtures) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().LedgerRepo().Return(fx.ledgerRepo)
	factory.EXPECT().AccountRepo().Return(fx.accountRepo)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestScanService_ProcessScan_GrantsPoints(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	store := openStore()
	account := &entity.LoyaltyAccount{ID: userID, LifetimePoints: 150} // bronze, +1 VIP

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, userID).Return(account, nil)
	fx.ledgerRepo.EXPECT().
		HasAccruedToday(ctx, userID, store.ID, uuid.Nil, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	expectCommit(t, fx)
	fx.ledgerRepo.EXPECT().
		AppendTransaction(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Return(nil)
	fx.accountRepo.EXPECT().IncrementLifetimePoints(ctx, userID, 2).Return(nil)
	fx.ledgerRepo.EXPECT().CurrentBalance(ctx, userID).Return(41, nil)

	// The post-commit publish runs detached; it may or may not land before
	// the test finishes.
	fx.publisher.EXPECT().PublishScanEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	result, err := fx.service.ProcessScan(ctx, scanInput(userID))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.Points)
	assert.Equal(t, 41, result.NewBalance)
	assert.Equal(t, 152, result.LifetimePoints)
	assert.Equal(t, entity.TierBronze, result.Tier.Tier)
	assert.False(t, result.Clamped)
	assert.NotEqual(t, uuid.Nil, result.TransactionID)
}

func TestScanService_ProcessScan_StoreNotFound(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(nil, repository.ErrStoreNotFound)

	result, err := fx.service.ProcessScan(ctx, scanInput(uuid.New()))
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrStoreNotFound, err)
}

func TestScanService_ProcessScan_CanceledStoreRejectsBeforeToken(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := openStore()
	store.SubscriptionStatus = entity.SubscriptionCanceled

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)

	// No token verification expected: the store gate comes first.
	result, err := fx.service.ProcessScan(ctx, scanInput(uuid.New()))
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrStoreInactive, err)
}

func TestScanService_ProcessScan_InvalidToken(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := openStore()

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().
		VerifyStoreToken(ctx, "daily-token").
		Return(uuid.Nil, errors.New("token expired"))

	result, err := fx.service.ProcessScan(ctx, scanInput(uuid.New()))
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrInvalidToken, err)
}

func TestScanService_ProcessScan_ForeignTokenRejected(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	store := openStore()

	// A valid token minted for a different store must not open this one.
	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(uuid.New(), nil)

	result, err := fx.service.ProcessScan(ctx, scanInput(uuid.New()))
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrInvalidToken, err)
}

func TestScanService_ProcessScan_NoAccount(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	store := openStore()

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, userID).Return(nil, repository.ErrAccountNotFound)

	result, err := fx.service.ProcessScan(ctx, scanInput(userID))
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrNotAuthenticated, err)
}

func TestScanService_ProcessScan_AlreadyAccruedToday(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	store := openStore()
	account := &entity.LoyaltyAccount{ID: userID}

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, userID).Return(account, nil)
	fx.ledgerRepo.EXPECT().
		HasAccruedToday(ctx, userID, store.ID, uuid.Nil, mock.AnythingOfType("time.Time")).
		Return(true, nil)

	result, err := fx.service.ProcessScan(ctx, scanInput(userID))
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrAlreadyCollectedToday, err)
}

func TestScanService_ProcessScan_DuplicateRaceDowngrades(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	store := openStore()
	account := &entity.LoyaltyAccount{ID: userID}

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, userID).Return(account, nil)
	fx.ledgerRepo.EXPECT().
		HasAccruedToday(ctx, userID, store.ID, uuid.Nil, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	// The advisory check passed but a concurrent scan won the race: the
	// unique constraint fires inside the transaction.
	expectCommit(t, fx)
	fx.ledgerRepo.EXPECT().
		AppendTransaction(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		Return(repository.ErrDuplicateAccrual)

	result, err := fx.service.ProcessScan(ctx, scanInput(userID))
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrAlreadyCollectedToday, err)
}

func TestScanService_ProcessScan_OutOfRangeRecordsSuspicious(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()

	storeLat, storeLng := 52.5219, 13.4132
	store := openStore()
	store.MonitoringEnabled = true
	store.Latitude = &storeLat
	store.Longitude = &storeLng

	account := &entity.LoyaltyAccount{ID: userID}

	// Scan roughly 1.4km away from the store.
	scanLat, scanLng := storeLat, storeLng+0.02
	input := scanInput(userID)
	input.ScanLatitude = &scanLat
	input.ScanLongitude = &scanLng

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, userID).Return(account, nil)

	fx.suspiciousRepo.EXPECT().
		CreateSuspiciousScan(ctx, mock.AnythingOfType("*entity.SuspiciousScan")).
		RunAndReturn(func(_ context.Context, scan *entity.SuspiciousScan) error {
			assert.Equal(t, store.ID, scan.StoreID)
			assert.Equal(t, userID, scan.UserID)
			assert.Equal(t, entity.ReasonGPSDistance, scan.Reason)
			assert.Equal(t, entity.ReviewStatusNew, scan.Status)
			require.NotNil(t, scan.DistanceMeters)
			assert.Greater(t, *scan.DistanceMeters, entity.DefaultMaxScanDistance)

			return nil
		})

	fx.ledgerRepo.EXPECT().
		HasAccruedToday(ctx, userID, store.ID, uuid.Nil, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	result, err := fx.service.ProcessScan(ctx, input)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrGeoOutOfRange, err)
}

func TestScanService_ProcessScan_SuspiciousLoggingFailureStillRejects(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()

	storeLat, storeLng := 52.5219, 13.4132
	store := openStore()
	store.MonitoringEnabled = true
	store.Latitude = &storeLat
	store.Longitude = &storeLng

	scanLat, scanLng := storeLat, storeLng+0.02
	input := scanInput(userID)
	input.ScanLatitude = &scanLat
	input.ScanLongitude = &scanLng

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, userID).
		Return(&entity.LoyaltyAccount{ID: userID}, nil)
	fx.suspiciousRepo.EXPECT().
		CreateSuspiciousScan(ctx, mock.AnythingOfType("*entity.SuspiciousScan")).
		Return(errors.New("insert failed"))
	fx.ledgerRepo.EXPECT().
		HasAccruedToday(ctx, userID, store.ID, uuid.Nil, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	result, err := fx.service.ProcessScan(ctx, input)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrGeoOutOfRange, err)
}

func TestScanService_ProcessScan_CampaignDailyLimitReached(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	store := openStore()
	account := &entity.LoyaltyAccount{ID: userID}

	now := time.Now()
	campaign := &entity.Campaign{
		ID:         uuid.New(),
		StoreID:    store.ID,
		Name:       "Stempelwoche",
		Multiplier: 2,
		DailyLimit: 10,
		StartDate:  now.Add(-24 * time.Hour),
		EndDate:    now.Add(72 * time.Hour),
		Status:     entity.CampaignStatusActive,
	}

	input := scanInput(userID)
	input.CampaignID = campaign.ID

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, userID).Return(account, nil)
	fx.campaignRepo.EXPECT().FindCampaign(ctx, campaign.ID, store.ID).Return(campaign, nil)
	fx.ledgerRepo.EXPECT().
		HasAccruedToday(ctx, userID, store.ID, campaign.ID, mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.ledgerRepo.EXPECT().
		SumCampaignPointsForDay(ctx, campaign.ID, mock.AnythingOfType("time.Time")).
		Return(10, nil)

	result, err := fx.service.ProcessScan(ctx, input)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrDailyLimitReached, err)
}

func TestScanService_ProcessScan_LazyCampaignExpiry(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	store := openStore()
	account := &entity.LoyaltyAccount{ID: userID}

	now := time.Now()
	campaign := &entity.Campaign{
		ID:        uuid.New(),
		StoreID:   store.ID,
		Name:      "Vergangene Aktion",
		StartDate: now.Add(-10 * 24 * time.Hour),
		EndDate:   now.Add(-3 * 24 * time.Hour),
		Status:    entity.CampaignStatusActive, // stored status lags reality
	}

	input := scanInput(userID)
	input.CampaignID = campaign.ID

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, userID).Return(account, nil)
	fx.campaignRepo.EXPECT().FindCampaign(ctx, campaign.ID, store.ID).Return(campaign, nil)
	fx.campaignRepo.EXPECT().
		UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignStatusExpired).
		Return(nil)
	fx.ledgerRepo.EXPECT().
		HasAccruedToday(ctx, userID, store.ID, campaign.ID, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	result, err := fx.service.ProcessScan(ctx, input)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrCampaignExpired, err)
}

func TestScanService_ProcessScan_ForeignCampaignLooksAbsent(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	store := openStore()
	account := &entity.LoyaltyAccount{ID: userID}

	campaignID := uuid.New()
	input := scanInput(userID)
	input.CampaignID = campaignID

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, userID).Return(account, nil)
	fx.campaignRepo.EXPECT().
		FindCampaign(ctx, campaignID, store.ID).
		Return(nil, repository.ErrCampaignNotFound)

	result, err := fx.service.ProcessScan(ctx, input)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrCampaignNotFound, err)
}

func TestScanService_ProcessScan_ClampedCampaignGrant(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	store := openStore()
	account := &entity.LoyaltyAccount{ID: userID} // starter, no bonus

	now := time.Now()
	campaign := &entity.Campaign{
		ID:         uuid.New(),
		StoreID:    store.ID,
		Name:       "Stempelwoche",
		Multiplier: 5,
		DailyLimit: 20,
		StartDate:  now.Add(-24 * time.Hour),
		EndDate:    now.Add(72 * time.Hour),
		Status:     entity.CampaignStatusActive,
	}

	input := scanInput(userID)
	input.CampaignID = campaign.ID

	fx.storeRepo.EXPECT().FindStoreByKey(ctx, "kiosk-42").Return(store, nil)
	fx.tokenService.EXPECT().VerifyStoreToken(ctx, "daily-token").Return(store.ID, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, userID).Return(account, nil)
	fx.campaignRepo.EXPECT().FindCampaign(ctx, campaign.ID, store.ID).Return(campaign, nil)
	fx.ledgerRepo.EXPECT().
		HasAccruedToday(ctx, userID, store.ID, campaign.ID, mock.AnythingOfType("time.Time")).
		Return(false, nil)
	fx.ledgerRepo.EXPECT().
		SumCampaignPointsForDay(ctx, campaign.ID, mock.AnythingOfType("time.Time")).
		Return(18, nil)

	expectCommit(t, fx)
	fx.ledgerRepo.EXPECT().
		AppendTransaction(ctx, mock.AnythingOfType("*entity.PointTransaction")).
		RunAndReturn(func(_ context.Context, tx *entity.PointTransaction) error {
			assert.Equal(t, 2, tx.Points)
			assert.Equal(t, campaign.ID, tx.CampaignID)
			assert.Equal(t, entity.SourceQRScan, tx.Source)

			return nil
		})
	fx.accountRepo.EXPECT().IncrementLifetimePoints(ctx, userID, 2).Return(nil)
	fx.ledgerRepo.EXPECT().CurrentBalance(ctx, userID).Return(2, nil)
	fx.publisher.EXPECT().PublishScanEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	result, err := fx.service.ProcessScan(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.Points)
	assert.True(t, result.Clamped)
}
