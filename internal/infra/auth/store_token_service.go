package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"stempel/config"
	"stempel/internal/domain/repository"
	"stempel/internal/domain/service"
)

// dailyTokenType tags rotating daily tokens inside their JWT claims.
const dailyTokenType = "daily_scan"

// dailyClaims are the claims carried by a rotating daily scan token.
type dailyClaims struct {
	StoreID string `json:"store_id"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

// storeTokenService resolves scan tokens to store identities. Two kinds are
// accepted: a short-lived rotating daily token, which is a self-contained JWT,
// and a persistent per-store token resolved through the database. Every
// failure collapses into ErrInvalidStoreToken so callers cannot distinguish
// malformed, expired and unknown tokens.
type storeTokenService struct {
	secret    string
	tokenRepo repository.StoreTokenRepository
}

// NewStoreTokenService is the constructor for storeTokenService.
func NewStoreTokenService(cfg *config.Config, tokenRepo repository.StoreTokenRepository) (service.StoreTokenService, error) {
	if cfg.SecretKey.StoreToken == "" {
		return nil, errors.New("store token secret must be provided")
	}

	return &storeTokenService{
		secret:    cfg.SecretKey.StoreToken,
		tokenRepo: tokenRepo,
	}, nil
}

// VerifyStoreToken resolves a token to a store ID. Daily JWTs are tried
// first; anything that does not parse as one falls through to the persistent
// token table.
func (s *storeTokenService) VerifyStoreToken(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, service.ErrInvalidStoreToken
	}

	if storeID, err := s.verifyDailyToken(token); err == nil {
		return storeID, nil
	}

	storeID, err := s.tokenRepo.FindStoreIDByToken(ctx, token)
	if err != nil {
		return uuid.Nil, service.ErrInvalidStoreToken
	}

	return storeID, nil
}

// GenerateDailyToken issues the rotating daily token for a store, expiring at
// the end of the current UTC calendar day.
func (s *storeTokenService) GenerateDailyToken(storeID uuid.UUID) (string, error) {
	now := time.Now()
	claims := dailyClaims{
		StoreID: storeID.String(),
		Type:    dailyTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(endOfUTCDay(now)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign daily token")
	}

	return signed, nil
}

func (s *storeTokenService) verifyDailyToken(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &dailyClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, service.ErrInvalidStoreToken
	}

	claims, ok := parsed.Claims.(*dailyClaims)
	if !ok || claims.Type != dailyTokenType {
		return uuid.Nil, service.ErrInvalidStoreToken
	}

	storeID, err := uuid.Parse(claims.StoreID)
	if err != nil {
		return uuid.Nil, service.ErrInvalidStoreToken
	}

	return storeID, nil
}

func endOfUTCDay(now time.Time) time.Time {
	year, month, day := now.UTC().Date()

	return time.Date(year, month, day, 23, 59, 59, 0, time.UTC)
}
