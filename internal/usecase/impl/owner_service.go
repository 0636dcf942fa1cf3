package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"stempel/config"
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

// RoleOwner marks owner sessions in token claims. The scan endpoints accept
// customer sessions; the management endpoints require this role.
const RoleOwner = "owner"

type ownerService struct {
	ownerRepo      repository.OwnerRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	config         *config.Config
	logger         *slog.Logger
}

// OwnerServiceParams holds dependencies for OwnerService, injected by Fx.
type OwnerServiceParams struct {
	fx.In

	OwnerRepo      repository.OwnerRepository
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOwnerService creates a new owner authentication service instance
func NewOwnerService(params OwnerServiceParams) usecase.OwnerUsecase {
	return &ownerService{
		ownerRepo:      params.OwnerRepo,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
		config:         params.Config,
		logger:         params.Logger,
	}
}

func (srv *ownerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterOwner creates a new owner account with a hashed password.
func (srv *ownerService) RegisterOwner(ctx context.Context, input usecase.RegisterOwnerInput) (*usecase.RegisterOwnerOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := srv.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	owner := &entity.StoreOwner{
		ID:           uuid.New(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := srv.ownerRepo.CreateOwner(ctx, owner); err != nil {
		if errors.Is(err, repository.ErrDuplicateOwner) {
			return nil, domainerrors.ErrOwnerAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create owner")
	}

	srv.log(ctx).Info("owner registered", slog.String("owner_id", owner.ID.String()))

	return &usecase.RegisterOwnerOutput{Owner: owner}, nil
}

// Login verifies credentials and issues a session token pair. Unknown email
// and wrong password are indistinguishable to the caller.
func (srv *ownerService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	owner, err := srv.ownerRepo.FindOwnerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find owner by email")
	}

	if !srv.passwordHasher.Check(input.Password, owner.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(owner.ID, []string{RoleOwner})
	if err != nil {
		return nil, errors.Wrap(err, "generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Owner:        owner,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (srv *ownerService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	token, err := srv.tokenService.ValidateToken(refreshToken, srv.config.SecretKey.Refresh)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || claims.Type != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	// The owner must still exist; a deleted account cannot refresh.
	if _, err := srv.ownerRepo.FindOwnerByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find owner by id")
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(claims.UserID, claims.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "generate tokens")
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}
