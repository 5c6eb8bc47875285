package repositories

import (
	"context"
	"time"

	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
)

// RefreshTokenRepositoryFacade defines operations on the refresh token store.
type RefreshTokenRepositoryFacade interface {
	// FindByToken retrieves a stored refresh token by its exact value.
	FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error)

	// Rotate replaces the user's stored refresh token: any existing rows for
	// the user are deleted and the new row inserted within one transaction,
	// keeping at most one live refresh token per user.
	Rotate(ctx context.Context, userID string, token string, expiryDate time.Time) error

	// DeleteByToken removes a single stored token by value. Used to clean up
	// expired tokens at redemption time.
	DeleteByToken(ctx context.Context, token string) error
}
