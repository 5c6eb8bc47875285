package services

import (
	"context"
	"time"
)

// TokenSvcFacade defines the interface for the token codec: minting and
// verifying signed tokens in the two independent signing domains.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, userID string) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, userID string) (string, time.Time, error)

	// ValidateAccessToken checks signature and expiry against the access
	// secret and returns the subject user ID.
	ValidateAccessToken(tokenString string) (string, error)
}
