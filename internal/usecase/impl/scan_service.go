package impl

import (
	"context"
	"log/slog"
	"time"

	"stempel/config"
	deliverycontext "stempel/internal/delivery/context"
	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/geo"
	"stempel/internal/domain/repository"
	"stempel/internal/domain/service"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publishTimeout bounds the post-commit event publish, which runs detached
// from the request context.
const publishTimeout = 10 * time.Second

// scanService implements the ScanUsecase interface. It orchestrates one QR
// scan end to end: everything that can reject runs before the transaction,
// the atomic ledger commit runs inside it, and side effects run after it.
type scanService struct {
	storeRepo         repository.StoreRepository
	campaignRepo      repository.CampaignRepository
	accountRepo       repository.AccountRepository
	ledgerRepo        repository.LedgerRepository
	suspiciousRepo    repository.SuspiciousScanRepository
	txManager         repository.TransactionManager
	storeTokenService service.StoreTokenService
	publisher         service.EventPublisher
	validator         *geo.Validator
	policy            *AccrualPolicy
	accrualDay        *time.Location
	logger            *slog.Logger
}

// ScanServiceParams holds dependencies for ScanService, injected by Fx.
type ScanServiceParams struct {
	fx.In

	StoreRepo         repository.StoreRepository
	CampaignRepo      repository.CampaignRepository
	AccountRepo       repository.AccountRepository
	LedgerRepo        repository.LedgerRepository
	SuspiciousRepo    repository.SuspiciousScanRepository
	TxManager         repository.TransactionManager
	StoreTokenService service.StoreTokenService
	Publisher         service.EventPublisher
	Validator         *geo.Validator
	Policy            *AccrualPolicy
	Config            *config.Config
	Logger            *slog.Logger
}

// NewScanService creates a new scan service instance
func NewScanService(params ScanServiceParams) (usecase.ScanUsecase, error) {
	loc := time.UTC
	if params.Config.Loyalty != nil && params.Config.Loyalty.Timezone != "" {
		parsed, err := time.LoadLocation(params.Config.Loyalty.Timezone)
		if err != nil {
			return nil, errors.Wrap(err, "load accrual timezone")
		}
		loc = parsed
	}

	return &scanService{
		storeRepo:         params.StoreRepo,
		campaignRepo:      params.CampaignRepo,
		accountRepo:       params.AccountRepo,
		ledgerRepo:        params.LedgerRepo,
		suspiciousRepo:    params.SuspiciousRepo,
		txManager:         params.TxManager,
		storeTokenService: params.StoreTokenService,
		publisher:         params.Publisher,
		validator:         params.Validator,
		policy:            params.Policy,
		accrualDay:        loc,
		logger:            params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *scanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessScan runs the accrual pipeline for one QR scan.
func (srv *scanService) ProcessScan(ctx context.Context, input usecase.ProcessScanInput) (*usecase.ScanResult, error) {
	now := time.Now()
	day := srv.dayOf(now)

	// 1. Resolve the store from its public key.
	store, err := srv.storeRepo.FindStoreByKey(ctx, input.StoreKey)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find store by key")
	}

	// 2. Closed stores reject before any token work.
	if !store.AcceptsScans() {
		return nil, domainerrors.ErrStoreInactive
	}

	// 3. The token must verify and must belong to the scanned store.
	tokenStoreID, err := srv.storeTokenService.VerifyStoreToken(ctx, input.Token)
	if err != nil || tokenStoreID != store.ID {
		return nil, domainerrors.ErrInvalidToken
	}

	// 4. The scanner needs a loyalty account.
	account, err := srv.accountRepo.FindAccountByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotAuthenticated
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find loyalty account")
	}

	// 5. Resolve the campaign, scoped to the store so a foreign campaign ID
	// reads as absent rather than leaking its existence.
	campaign, err := srv.resolveCampaign(ctx, input.CampaignID, store.ID, now)
	if err != nil {
		return nil, err
	}

	// 6. Location check. A failed check is recorded for review before the
	// rejection goes out; recording is best-effort and never blocks.
	geoResult := srv.validator.ValidateLocation(store, input.ScanLatitude, input.ScanLongitude)
	if !geoResult.Valid {
		srv.recordSuspicious(ctx, store, input, geoResult)
	}

	// 7. Advisory duplicate check. Cheap early exit; the unique constraint
	// behind AppendTransaction remains the authority under races.
	alreadyAccrued, err := srv.ledgerRepo.HasAccruedToday(ctx, input.UserID, store.ID, input.CampaignID, day)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "check daily accrual")
	}

	// 8. Campaign daily budget consumed so far.
	paidToday := 0
	if campaign != nil && campaign.DailyLimit > 0 {
		paidToday, err = srv.ledgerRepo.SumCampaignPointsForDay(ctx, campaign.ID, day)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "sum campaign daily payout")
		}
	}

	// 9. The pure decision.
	previousTier := entity.TierFor(account.LifetimePoints)
	decision := srv.policy.Decide(PolicyInput{
		Now:             now,
		Geo:             geoResult,
		Campaign:        campaign,
		AlreadyAccrued:  alreadyAccrued,
		PointsPaidToday: paidToday,
		Tier:            previousTier,
	})
	if decision.Reject != nil {
		return nil, decision.Reject
	}

	// 10. Atomic commit: ledger entry plus lifetime counter, one transaction.
	transaction := &entity.PointTransaction{
		ID:         uuid.New(),
		UserID:     input.UserID,
		StoreID:    store.ID,
		CampaignID: input.CampaignID,
		Points:     decision.Points,
		Source:     entity.SourceQRScan,
		ScanDay:    day,
		CreatedAt:  now,
	}

	var newBalance, lifetimePoints int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledgerRepo := repoFactory.LedgerRepo()
		accountRepo := repoFactory.AccountRepo()

		if err := ledgerRepo.AppendTransaction(ctx, transaction); err != nil {
			return errors.Wrap(err, "append ledger entry")
		}
		if err := accountRepo.IncrementLifetimePoints(ctx, input.UserID, decision.Points); err != nil {
			return errors.Wrap(err, "increment lifetime points")
		}

		balance, err := ledgerRepo.CurrentBalance(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "compute balance")
		}
		newBalance = balance
		lifetimePoints = account.LifetimePoints + decision.Points

		return nil
	})
	if err != nil {
		// A racing scan of the same tuple loses to the unique constraint.
		// Downgrade to the duplicate rejection rather than surfacing a 500.
		if errors.Is(err, repository.ErrDuplicateAccrual) {
			return nil, domainerrors.ErrAlreadyCollectedToday
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "commit accrual")
	}

	newTier := entity.TierFor(lifetimePoints)
	srv.publishCommitted(ctx, transaction, newBalance, lifetimePoints, previousTier, newTier)

	srv.log(ctx).Info("scan granted",
		slog.String("user_id", input.UserID.String()),
		slog.String("store_id", store.ID.String()),
		slog.Int("points", decision.Points),
		slog.Bool("clamped", decision.Clamped))

	return &usecase.ScanResult{
		TransactionID:  transaction.ID,
		Points:         decision.Points,
		NewBalance:     newBalance,
		LifetimePoints: lifetimePoints,
		Tier:           newTier,
		Clamped:        decision.Clamped,
	}, nil
}

// resolveCampaign loads the campaign for a scan. Reads perform lazy expiry:
// when the stored status lags behind a passed end date, it is flipped before
// the campaign is evaluated.
func (srv *scanService) resolveCampaign(ctx context.Context, campaignID, storeID uuid.UUID, now time.Time) (*entity.Campaign, error) {
	if campaignID == uuid.Nil {
		return nil, nil
	}

	campaign, err := srv.campaignRepo.FindCampaign(ctx, campaignID, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find campaign")
	}

	if campaign.Status != entity.CampaignStatusExpired && campaign.ExpiredAt(now) {
		if err := srv.campaignRepo.UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignStatusExpired); err != nil {
			srv.log(ctx).Warn("lazy campaign expiry failed",
				slog.String("campaign_id", campaign.ID.String()),
				slog.Any("error", err))
		}
		campaign.Status = entity.CampaignStatusExpired
	}

	return campaign, nil
}

// recordSuspicious writes a flagged scan for review. Best-effort: any failure
// is logged and swallowed so fraud logging can never mask the rejection.
func (srv *scanService) recordSuspicious(ctx context.Context, store *entity.Store, input usecase.ProcessScanInput, result geo.Result) {
	if input.ScanLatitude == nil || input.ScanLongitude == nil {
		return
	}

	reason := entity.ReasonGPSDistance
	if result.Reason == geo.ReasonWrongCountry {
		reason = entity.ReasonWrongCountry
	}

	scan := &entity.SuspiciousScan{
		ID:             uuid.New(),
		StoreID:        store.ID,
		UserID:         input.UserID,
		ScanLatitude:   *input.ScanLatitude,
		ScanLongitude:  *input.ScanLongitude,
		StoreLatitude:  store.Latitude,
		StoreLongitude: store.Longitude,
		DistanceMeters: result.DistanceMeters,
		Reason:         reason,
		Status:         entity.ReviewStatusNew,
		CreatedAt:      time.Now(),
	}

	if err := srv.suspiciousRepo.CreateSuspiciousScan(ctx, scan); err != nil {
		srv.log(ctx).Warn("suspicious scan logging failed",
			slog.String("store_id", store.ID.String()),
			slog.String("user_id", input.UserID.String()),
			slog.Any("error", err))
	}
}

// publishCommitted emits the scan event for async side effects. It runs in a
// goroutine detached from the request context: the accrual is already durable
// and the response must not wait on the bus.
func (srv *scanService) publishCommitted(ctx context.Context, tx *entity.PointTransaction, balance, lifetime int, previous, next entity.TierStatus) {
	event := &service.ScanEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		TransactionID:  tx.ID.String(),
		UserID:         tx.UserID.String(),
		StoreID:        tx.StoreID.String(),
		Points:         tx.Points,
		NewBalance:     balance,
		LifetimePoints: lifetime,
		PreviousTier:   string(previous.Tier),
		NewTier:        string(next.Tier),
	}
	if tx.CampaignID != uuid.Nil {
		event.CampaignID = tx.CampaignID.String()
	}

	logger := srv.log(ctx)
	go func() {
		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		if err := srv.publisher.PublishScanEvent(publishCtx, event); err != nil {
			logger.Error("scan event publish failed",
				slog.String("transaction_id", event.TransactionID),
				slog.Any("error", err))
		}
	}()
}

// dayOf truncates an instant to the accrual calendar day.
func (srv *scanService) dayOf(now time.Time) time.Time {
	local := now.In(srv.accrualDay)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
