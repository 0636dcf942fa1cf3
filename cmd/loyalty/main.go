package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"stempel/config"
	"stempel/internal/delivery"
	"stempel/internal/delivery/http"
	"stempel/internal/delivery/http/middleware"
	"stempel/internal/delivery/http/router/handler"
	"stempel/internal/domain/geo"
	"stempel/internal/domain/service"
	"stempel/internal/infra/auth"
	logs "stempel/internal/infra/log"
	"stempel/internal/infra/notification"
	"stempel/internal/infra/persistence/postgres"
	"stempel/internal/infra/pubsub"
	"stempel/internal/infra/qrcode"
	"stempel/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewStoreRepository,
			postgres.NewStoreTokenRepository,
			postgres.NewCampaignRepository,
			postgres.NewAccountRepository,
			postgres.NewLedgerRepository,
			postgres.NewSuspiciousScanRepository,
			postgres.NewReferralRepository,
			postgres.NewOwnerRepository,
			postgres.NewWalletPassRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewStoreTokenService,
			newFirebaseService,
			newQRCodeService,
			newGeoValidator,
			newAccrualPolicy,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newGeoValidator builds the location validator from the configured country
// table, falling back to the built-in bounding boxes.
func newGeoValidator(cfg *config.Config) *geo.Validator {
	if cfg.Geofence == nil || len(cfg.Geofence.Countries) == 0 {
		return geo.NewValidator(nil)
	}

	countries := make([]geo.CountryBound, 0, len(cfg.Geofence.Countries))
	for _, box := range cfg.Geofence.Countries {
		countries = append(countries, geo.NewCountryBound(box.Code, box.MinLng, box.MinLat, box.MaxLng, box.MaxLat))
	}

	return geo.NewValidator(countries)
}

// newAccrualPolicy builds the accrual decision policy from configuration
func newAccrualPolicy(cfg *config.Config) *impl.AccrualPolicy {
	return impl.NewAccrualPolicy(cfg.Loyalty)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScanService,
			impl.NewLevelService,
			impl.NewStoreService,
			impl.NewCampaignService,
			impl.NewFraudService,
			impl.NewAccountService,
			impl.NewOwnerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewScanHandler,
			handler.NewOwnerHandler,
			handler.NewStoreHandler,
			handler.NewCampaignHandler,
			handler.NewFraudHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
