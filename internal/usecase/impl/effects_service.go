package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stempel/config"
	deliverycontext "stempel/internal/delivery/context"
	"stempel/internal/domain/entity"
	"stempel/internal/domain/repository"
	"stempel/internal/domain/service"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultReferralPoints      = 10
	defaultReferralBonusPoints = 20
)

// scanEffectsService implements the ScanEffectsUsecase interface. It applies
// the deferred side effects of a committed accrual. Every step is idempotent:
// the event bus may redeliver, and a partially applied event must converge on
// retry rather than double-pay.
type scanEffectsService struct {
	accountRepo         repository.AccountRepository
	ledgerRepo          repository.LedgerRepository
	referralRepo        repository.ReferralRepository
	walletPassRepo      repository.WalletPassRepository
	txManager           repository.TransactionManager
	notificationService service.NotificationService
	referralPoints      int
	referralBonusPoints int
	logger              *slog.Logger
}

// ScanEffectsServiceParams holds dependencies for ScanEffectsService, injected by Fx.
type ScanEffectsServiceParams struct {
	fx.In

	AccountRepo         repository.AccountRepository
	LedgerRepo          repository.LedgerRepository
	ReferralRepo        repository.ReferralRepository
	WalletPassRepo      repository.WalletPassRepository
	TxManager           repository.TransactionManager
	NotificationService service.NotificationService
	Config              *config.Config
	Logger              *slog.Logger
}

// NewScanEffectsService creates a new scan effects service instance
func NewScanEffectsService(params ScanEffectsServiceParams) usecase.ScanEffectsUsecase {
	referralPoints := defaultReferralPoints
	referralBonusPoints := defaultReferralBonusPoints
	if params.Config.Loyalty != nil {
		if params.Config.Loyalty.ReferralPoints > 0 {
			referralPoints = params.Config.Loyalty.ReferralPoints
		}
		if params.Config.Loyalty.ReferralBonusPoints > 0 {
			referralBonusPoints = params.Config.Loyalty.ReferralBonusPoints
		}
	}

	return &scanEffectsService{
		accountRepo:         params.AccountRepo,
		ledgerRepo:          params.LedgerRepo,
		referralRepo:        params.ReferralRepo,
		walletPassRepo:      params.WalletPassRepo,
		txManager:           params.TxManager,
		notificationService: params.NotificationService,
		referralPoints:      referralPoints,
		referralBonusPoints: referralBonusPoints,
		logger:              params.Logger,
	}
}

func (srv *scanEffectsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleScanEvent processes one delivered scan event: referral completion,
// wallet pass refresh, level-change push. A returned error signals the bus to
// redeliver; the push is best-effort and never fails the event.
func (srv *scanEffectsService) HandleScanEvent(ctx context.Context, event *service.ScanEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		// Malformed events can never succeed; drop instead of retrying forever.
		srv.log(ctx).Error("dropping scan event with invalid user id",
			slog.String("user_id", event.UserID),
			slog.Any("error", err))

		return nil
	}

	if err := srv.completeReferral(ctx, userID); err != nil {
		return errors.Wrap(err, "complete referral")
	}

	if err := srv.refreshWalletPass(ctx, userID); err != nil {
		return errors.Wrap(err, "refresh wallet pass")
	}

	srv.notifyLevelChange(ctx, userID, event)

	return nil
}

// completeReferral pays out a pending referral on the referee's first scan.
// MarkCompleted is the idempotency gate: only the transaction that flips
// CompletedAt appends the payout entries.
func (srv *scanEffectsService) completeReferral(ctx context.Context, refereeID uuid.UUID) error {
	referral, err := srv.referralRepo.FindPendingByReferee(ctx, refereeID)
	if err != nil {
		if errors.Is(err, repository.ErrReferralNotFound) {
			return nil
		}

		return errors.Wrap(err, "find pending referral")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		referralRepo := repoFactory.ReferralRepo()
		ledgerRepo := repoFactory.LedgerRepo()
		accountRepo := repoFactory.AccountRepo()

		completed, err := referralRepo.MarkCompleted(ctx, referral.ID)
		if err != nil {
			return errors.Wrap(err, "mark referral completed")
		}
		if !completed {
			// Another delivery already paid this referral out.
			return nil
		}

		now := time.Now()
		payouts := []*entity.PointTransaction{
			{
				ID:         uuid.New(),
				UserID:     referral.RefereeID,
				CampaignID: uuid.Nil,
				Points:     srv.referralPoints,
				Source:     entity.SourceReferral,
				CreatedAt:  now,
			},
			{
				ID:         uuid.New(),
				UserID:     referral.ReferrerID,
				CampaignID: uuid.Nil,
				Points:     srv.referralBonusPoints,
				Source:     entity.SourceReferralBonus,
				CreatedAt:  now,
			},
		}

		for _, payout := range payouts {
			if err := ledgerRepo.AppendTransaction(ctx, payout); err != nil {
				return errors.Wrap(err, "append referral payout")
			}
			if err := accountRepo.IncrementLifetimePoints(ctx, payout.UserID, payout.Points); err != nil {
				return errors.Wrap(err, "increment lifetime points")
			}
		}

		return nil
	})
}

// refreshWalletPass recomputes balance and tier from storage rather than
// trusting the event payload, which may be stale after a referral payout.
func (srv *scanEffectsService) refreshWalletPass(ctx context.Context, userID uuid.UUID) error {
	account, err := srv.accountRepo.FindAccountByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "find loyalty account")
	}

	balance, err := srv.ledgerRepo.CurrentBalance(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "compute balance")
	}

	pass := &entity.WalletPass{
		UserID:       userID,
		SerialNumber: fmt.Sprintf("pass-%s", userID),
		Balance:      balance,
		Tier:         entity.TierFor(account.LifetimePoints).Tier,
		UpdatedAt:    time.Now(),
	}

	return srv.walletPassRepo.UpsertPass(ctx, pass)
}

// notifyLevelChange pushes a notice when the accrual crossed a tier boundary.
// Best-effort: a missing token or a failed send is logged and swallowed.
func (srv *scanEffectsService) notifyLevelChange(ctx context.Context, userID uuid.UUID, event *service.ScanEvent) {
	if event.PreviousTier == event.NewTier {
		return
	}

	account, err := srv.accountRepo.FindAccountByID(ctx, userID)
	if err != nil || account.FCMToken == "" {
		return
	}

	title := "Level up!"
	body := fmt.Sprintf("You reached %s status.", event.NewTier)
	data := map[string]string{
		"type":          "level_change",
		"previous_tier": event.PreviousTier,
		"new_tier":      event.NewTier,
	}

	if err := srv.notificationService.SendSingleNotification(ctx, account.FCMToken, title, body, data); err != nil {
		srv.log(ctx).Warn("level change push failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}
}
