package services

import (
	"context"

	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
)

// UserSvcFacade defines user lookup operations needed by the role gates and
// handlers.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by ID. Returns apperrors.ErrNotFound if the
	// ID no longer resolves (e.g. a deleted account).
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// RolesForUser returns the roles attached to a user.
	RolesForUser(ctx context.Context, userID string) ([]domain.Role, error)
}
