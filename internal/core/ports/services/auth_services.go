package services

import (
	"context"
	"time"

	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
)

// SignupParams carries the validated signup input into the service layer.
type SignupParams struct {
	Username string
	Email    string
	Password string
	// Roles optionally names extra roles to attach beyond the default "user".
	Roles []string
}

// SigninResult is returned on successful authentication.
type SigninResult struct {
	User         domain.User
	Authorities  []string
	AccessToken  string
	AccessExp    time.Time
	RefreshToken string
	RefreshExp   time.Time
}

// TokenPair is returned on successful refresh token redemption.
type TokenPair struct {
	AccessToken  string
	AccessExp    time.Time
	RefreshToken string
	RefreshExp   time.Time
}

// AuthSvcFacade defines the authentication service interface: signup, signin
// and refresh token rotation.
type AuthSvcFacade interface {
	Signup(ctx context.Context, params SignupParams) error
	Signin(ctx context.Context, username, password string) (*SigninResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
