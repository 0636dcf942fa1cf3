package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "stempel/internal/delivery/context"
	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/repository"
	"stempel/internal/domain/service"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeKeyBytes sizes the random public store key (hex-encoded, so twice the
// length on the wire).
const storeKeyBytes = 8

type storeService struct {
	storeRepo         repository.StoreRepository
	storeTokenService service.StoreTokenService
	qrcodeService     service.QRCodeService
	logger            *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo         repository.StoreRepository
	StoreTokenService service.StoreTokenService
	QRCodeService     service.QRCodeService
	Logger            *slog.Logger
}

// NewStoreService creates a new store service instance
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo:         params.StoreRepo,
		storeTokenService: params.StoreTokenService,
		qrcodeService:     params.QRCodeService,
		logger:            params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore registers a new store under the owner and assigns its public
// scan key. New stores start on a trial subscription.
func (srv *storeService) CreateStore(ctx context.Context, input usecase.CreateStoreInput) (*entity.Store, error) {
	key, err := newStoreKey()
	if err != nil {
		return nil, errors.Wrap(err, "generate store key")
	}

	scannerType := input.ScannerType
	if scannerType == "" {
		scannerType = entity.ScannerTypeFixed
	}

	store := &entity.Store{
		ID:                 uuid.New(),
		OwnerID:            input.OwnerID,
		ParentStoreID:      input.ParentStoreID,
		Key:                key,
		Name:               input.Name,
		Latitude:           input.Latitude,
		Longitude:          input.Longitude,
		MaxScanDistance:    input.MaxScanDistance,
		MonitoringEnabled:  input.MonitoringEnabled,
		ScannerType:        scannerType,
		Country:            input.Country,
		IsActive:           true,
		SubscriptionStatus: entity.SubscriptionTrial,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := srv.storeRepo.CreateStore(ctx, store); err != nil {
		if errors.Is(err, repository.ErrDuplicateStoreKey) {
			// Random collision on an 8-byte key. Retry once with a fresh key.
			store.Key, err = newStoreKey()
			if err != nil {
				return nil, errors.Wrap(err, "regenerate store key")
			}
			if err := srv.storeRepo.CreateStore(ctx, store); err != nil {
				return nil, domainerrors.NewDatabaseExecuteError(err, "create store")
			}

			return store, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create store")
	}

	srv.log(ctx).Info("store created",
		slog.String("store_id", store.ID.String()),
		slog.String("owner_id", store.OwnerID.String()))

	return store, nil
}

// GetStore retrieves one store, enforcing owner access.
func (srv *storeService) GetStore(ctx context.Context, ownerID, storeID uuid.UUID) (*entity.Store, error) {
	return srv.ownedStore(ctx, ownerID, storeID)
}

// ListStores retrieves all stores of an owner.
func (srv *storeService) ListStores(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.FindStoresByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find stores by owner")
	}

	return stores, nil
}

// ListFiliales retrieves the locations grouped under a parent store.
func (srv *storeService) ListFiliales(ctx context.Context, ownerID, parentID uuid.UUID) ([]*entity.Store, error) {
	if _, err := srv.ownedStore(ctx, ownerID, parentID); err != nil {
		return nil, err
	}

	stores, err := srv.storeRepo.FindStoresByParent(ctx, parentID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find stores by parent")
	}

	return stores, nil
}

// UpdateStore applies the given settings to an owned store.
func (srv *storeService) UpdateStore(ctx context.Context, ownerID, storeID uuid.UUID, input usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := srv.ownedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	applyStoreUpdates(store, input)
	store.UpdatedAt = time.Now()

	if err := srv.storeRepo.UpdateStore(ctx, store); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "update store")
	}

	return store, nil
}

// RotateDailyToken issues a new rotating daily scan token for the store.
// Previously issued daily tokens stay valid until their natural end-of-day
// expiry; rotation is for reprints, not revocation.
func (srv *storeService) RotateDailyToken(ctx context.Context, ownerID, storeID uuid.UUID) (*usecase.DailyTokenOutput, error) {
	store, err := srv.ownedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	token, err := srv.storeTokenService.GenerateDailyToken(store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "generate daily token")
	}

	return &usecase.DailyTokenOutput{
		Token:     token,
		StoreKey:  store.Key,
		ExpiresAt: endOfDay(time.Now()).Format(time.RFC3339),
	}, nil
}

// GenerateStoreQR renders the printable scan QR code for the store.
func (srv *storeService) GenerateStoreQR(ctx context.Context, ownerID, storeID uuid.UUID) ([]byte, error) {
	store, err := srv.ownedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	token, err := srv.storeTokenService.GenerateDailyToken(store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "generate daily token")
	}

	qrCode, err := srv.qrcodeService.GenerateScanQR(store.Key, token)
	if err != nil {
		return nil, errors.Wrap(err, "generate scan QR")
	}

	return qrCode, nil
}

// ownedStore loads a store and verifies the caller owns it. Foreign stores
// read as not found so ownership cannot be probed.
func (srv *storeService) ownedStore(ctx context.Context, ownerID, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find store by id")
	}
	if store.OwnerID != ownerID {
		return nil, domainerrors.ErrStoreNotFound
	}

	return store, nil
}

func applyStoreUpdates(store *entity.Store, input usecase.UpdateStoreInput) {
	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Latitude != nil {
		store.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		store.Longitude = input.Longitude
	}
	if input.MaxScanDistance != nil {
		store.MaxScanDistance = *input.MaxScanDistance
	}
	if input.MonitoringEnabled != nil {
		store.MonitoringEnabled = *input.MonitoringEnabled
	}
	if input.ScannerType != nil {
		store.ScannerType = *input.ScannerType
	}
	if input.Country != nil {
		store.Country = *input.Country
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}
}

func newStoreKey() (string, error) {
	buf := make([]byte, storeKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

func endOfDay(now time.Time) time.Time {
	year, month, day := now.UTC().Date()

	return time.Date(year, month, day, 23, 59, 59, 0, time.UTC)
}
