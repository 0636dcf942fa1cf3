package auth

import (
	"context"
	"testing"

	"stempel/config"
	"stempel/internal/domain/repository"
	"stempel/internal/domain/service"
	mockRepo "stempel/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreTokenService(t *testing.T) (service.StoreTokenService, *mockRepo.MockStoreTokenRepository) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.StoreToken = "test_store_token_secret_very_long_for_testing"

	tokenRepo := mockRepo.NewMockStoreTokenRepository(t)
	svc, err := NewStoreTokenService(cfg, tokenRepo)
	require.NoError(t, err)

	return svc, tokenRepo
}

func TestStoreTokenService_DailyTokenRoundTrip(t *testing.T) {
	svc, _ := newStoreTokenService(t)

	storeID := uuid.New()
	token, err := svc.GenerateDailyToken(storeID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// A valid daily token resolves without touching the persistent table.
	resolved, err := svc.VerifyStoreToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, storeID, resolved)
}

func TestStoreTokenService_EmptyTokenRejected(t *testing.T) {
	svc, _ := newStoreTokenService(t)

	resolved, err := svc.VerifyStoreToken(context.Background(), "")
	assert.Equal(t, uuid.Nil, resolved)
	assert.Equal(t, service.ErrInvalidStoreToken, err)
}

func TestStoreTokenService_PersistentTokenFallback(t *testing.T) {
	svc, tokenRepo := newStoreTokenService(t)

	ctx := context.Background()
	storeID := uuid.New()

	// Not a JWT, so the lookup falls through to the persistent table.
	tokenRepo.EXPECT().
		FindStoreIDByToken(ctx, "persistent-pos-token").
		Return(storeID, nil)

	resolved, err := svc.VerifyStoreToken(ctx, "persistent-pos-token")
	require.NoError(t, err)
	assert.Equal(t, storeID, resolved)
}

func TestStoreTokenService_UnknownTokenCollapses(t *testing.T) {
	svc, tokenRepo := newStoreTokenService(t)

	ctx := context.Background()
	tokenRepo.EXPECT().
		FindStoreIDByToken(ctx, "unknown-token").
		Return(uuid.Nil, repository.ErrStoreTokenNotFound)

	// Malformed, expired and unknown all surface as the same error.
	resolved, err := svc.VerifyStoreToken(ctx, "unknown-token")
	assert.Equal(t, uuid.Nil, resolved)
	assert.Equal(t, service.ErrInvalidStoreToken, err)
}

func TestStoreTokenService_ForeignSecretRejected(t *testing.T) {
	svc, tokenRepo := newStoreTokenService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.StoreToken = "a_completely_different_secret_key_for_testing"
	otherSvc, err := NewStoreTokenService(otherCfg, mockRepo.NewMockStoreTokenRepository(t))
	require.NoError(t, err)

	token, err := otherSvc.GenerateDailyToken(uuid.New())
	require.NoError(t, err)

	// The signature check fails, so the JWT falls through to the table.
	ctx := context.Background()
	tokenRepo.EXPECT().
		FindStoreIDByToken(ctx, token).
		Return(uuid.Nil, repository.ErrStoreTokenNotFound)

	resolved, err := svc.VerifyStoreToken(ctx, token)
	assert.Equal(t, uuid.Nil, resolved)
	assert.Equal(t, service.ErrInvalidStoreToken, err)
}

func TestStoreTokenService_MissingSecret(t *testing.T) {
	svc, err := NewStoreTokenService(&config.Config{}, mockRepo.NewMockStoreTokenRepository(t))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "store token secret must be provided")
}
