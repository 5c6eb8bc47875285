package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmalhotra23/flightdeck_backend/internal/apperrors"
	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
	portsrepo "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/repositories"
	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
	"github.com/rmalhotra23/flightdeck_backend/internal/utils"
)

// minPasswordLength is enforced before any write happens.
const minPasswordLength = 6

// authService implements AuthSvcFacade: signup, signin and refresh token
// rotation on top of the credential and refresh token stores.
type authService struct {
	userRepo  portsrepo.UserRepositoryFacade
	roleRepo  portsrepo.RoleRepositoryFacade
	tokenRepo portsrepo.RefreshTokenRepositoryFacade
	tokenSvc  portssvc.TokenSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	userRepo portsrepo.UserRepositoryFacade,
	roleRepo portsrepo.RoleRepositoryFacade,
	tokenRepo portsrepo.RefreshTokenRepositoryFacade,
	tokenSvc portssvc.TokenSvcFacade,
) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		tokenRepo: tokenRepo,
		tokenSvc:  tokenSvc,
	}
}

// Signup validates the input, probes both uniqueness constraints and persists
// the new user with its role associations. No token is issued here.
func (s *authService) Signup(ctx context.Context, params portssvc.SignupParams) error {
	if params.Username == "" || params.Email == "" || params.Password == "" {
		return fmt.Errorf("%w: username, email and password are required", apperrors.ErrValidation)
	}
	if len(params.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}

	// Two independent uniqueness probes; either collision rejects the signup
	// before anything is written.
	if _, err := s.userRepo.FindUserByUsername(ctx, params.Username); err == nil {
		return apperrors.ErrDuplicateUsername
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to probe username uniqueness: %w", err)
	}
	if _, err := s.userRepo.FindUserByEmail(ctx, params.Email); err == nil {
		return apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to probe email uniqueness: %w", err)
	}

	roleIDs, err := s.resolveSignupRoles(ctx, params.Roles)
	if err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(params.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.CreateUserWithRoles(ctx, user, roleIDs); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}

// resolveSignupRoles maps the default "user" role plus any explicitly
// requested role names to role IDs. An unknown requested role is a client
// error; a missing default role means the startup seeding never ran.
func (s *authService) resolveSignupRoles(ctx context.Context, requested []string) ([]int64, error) {
	defaultRole, err := s.roleRepo.FindRoleByName(ctx, domain.DefaultRoleName)
	if err != nil {
		return nil, fmt.Errorf("default role %q not seeded: %w", domain.DefaultRoleName, err)
	}

	roleIDs := []int64{defaultRole.RoleID}
	for _, name := range requested {
		if name == domain.DefaultRoleName {
			continue
		}
		role, err := s.roleRepo.FindRoleByName(ctx, name)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownRole, name)
			}
			return nil, fmt.Errorf("failed to look up role %q: %w", name, err)
		}
		roleIDs = append(roleIDs, role.RoleID)
	}
	return roleIDs, nil
}

// Signin verifies the credentials and issues a fresh token pair. The
// username-vs-password failure distinction is deliberate and surfaced to the
// handler through distinct errors.
func (s *authService) Signin(ctx context.Context, username, password string) (*portssvc.SigninResult, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	pair, err := s.issueTokenPair(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	roles, err := s.roleRepo.RolesForUser(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	return &portssvc.SigninResult{
		User:         *user,
		Authorities:  domain.Authorities(roles),
		AccessToken:  pair.AccessToken,
		AccessExp:    pair.AccessExp,
		RefreshToken: pair.RefreshToken,
		RefreshExp:   pair.RefreshExp,
	}, nil
}

// Refresh redeems a stored refresh token for a new token pair, rotating the
// stored token. Expired rows are deleted on use rather than by a sweeper.
//
// Two requests presenting the same valid token concurrently can both pass the
// store lookup before either rotation lands; the per-user delete-then-insert
// keeps the store consistent but does not make tokens single-use.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*portssvc.TokenPair, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrRefreshTokenMissing
	}

	stored, err := s.tokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrRefreshTokenNotFound
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if stored.Expired(time.Now()) {
		if err := s.tokenRepo.DeleteByToken(ctx, stored.Token); err != nil {
			return nil, fmt.Errorf("failed to delete expired refresh token: %w", err)
		}
		return nil, apperrors.ErrRefreshTokenExpired
	}

	return s.issueTokenPair(ctx, stored.UserID)
}

// issueTokenPair mints an access/refresh pair and rotates the stored refresh
// token for the user in a single transaction.
func (s *authService) issueTokenPair(ctx context.Context, userID string) (*portssvc.TokenPair, error) {
	accessToken, accessExp, err := s.tokenSvc.GenerateAccessToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.tokenSvc.GenerateRefreshToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepo.Rotate(ctx, userID, refreshToken, refreshExp); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return &portssvc.TokenPair{
		AccessToken:  accessToken,
		AccessExp:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}
