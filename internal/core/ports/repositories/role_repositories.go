package repositories

import (
	"context"

	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
)

// RoleRepositoryFacade defines operations on the roles table and the
// user_roles association.
type RoleRepositoryFacade interface {
	// EnsureRoles idempotently creates the given role names if absent.
	// Called once at startup to seed the fixed role set.
	EnsureRoles(ctx context.Context, names []string) error

	// FindRoleByName retrieves a role by its unique name.
	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)

	// RolesForUser returns the roles attached to a user via an explicit join.
	RolesForUser(ctx context.Context, userID string) ([]domain.Role, error)
}
