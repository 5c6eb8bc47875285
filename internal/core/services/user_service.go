package services

import (
	"context"
	"fmt"

	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
	portsrepo "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/repositories"
	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
)

// userService implements the UserSvcFacade on top of the user and role
// repositories.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	roleRepo portsrepo.RoleRepositoryFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, roleRepo portsrepo.RoleRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) RolesForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	roles, err := s.roleRepo.RolesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles for user %s: %w", userID, err)
	}
	return roles, nil
}
