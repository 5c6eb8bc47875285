package services

import (
	"context"
	"time"

	"github.com/rmalhotra23/flightdeck_backend/internal/platform/config"
	"github.com/rmalhotra23/flightdeck_backend/internal/utils"

	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
)

// tokenService implements the TokenSvcFacade. It holds the two signing
// secrets; access and refresh tokens never share one.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken mints a short-lived access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, userID string) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}

// GenerateRefreshToken mints a long-lived refresh token for the given user.
// The caller is responsible for persisting it; possession alone does not
// redeem it.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	token, err := utils.GenerateJWT(userID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}

// ValidateAccessToken verifies a token against the access secret and returns
// its subject.
func (s *tokenService) ValidateAccessToken(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
