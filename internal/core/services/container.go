package services

import (
	portsrepo "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/repositories"
	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
	"github.com/rmalhotra23/flightdeck_backend/internal/platform/config"
)

// NewServiceContainer wires up all application services from the repository
// provider and configuration.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	tokenSvc := NewTokenService(cfg)
	userSvc := NewUserService(repos.UserRepo, repos.RoleRepo)
	authSvc := NewAuthService(repos.UserRepo, repos.RoleRepo, repos.RefreshTokenRepo, tokenSvc)

	return &portssvc.ServiceContainer{
		Auth:  authSvc,
		Token: tokenSvc,
		User:  userSvc,
	}
}
