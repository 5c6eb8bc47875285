package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		RoleRepo:         newPgxRoleRepository(dbPool),
		RefreshTokenRepo: newPgxRefreshTokenRepository(dbPool),
	}
}
