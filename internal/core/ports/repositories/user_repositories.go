package repositories

import (
	"context"

	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// CreateUserWithRoles persists a new user and its role associations in a
	// single transaction. Every signup ends with at least one role attached.
	CreateUserWithRoles(ctx context.Context, user domain.User, roleIDs []int64) error

	// DeleteUser removes a user row; refresh tokens cascade.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
