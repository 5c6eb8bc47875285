package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmalhotra23/flightdeck_backend/internal/apperrors"
	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
	portsrepo "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/repositories"
	"github.com/rmalhotra23/flightdeck_backend/internal/models"
)

type PgxRoleRepository struct {
	db *pgxpool.Pool
}

func newPgxRoleRepository(db *pgxpool.Pool) portsrepo.RoleRepositoryFacade {
	return &PgxRoleRepository{db: db}
}

var _ portsrepo.RoleRepositoryFacade = (*PgxRoleRepository)(nil)

func toDomainRole(m models.Role) domain.Role {
	return domain.Role{
		RoleID: m.RoleID,
		Name:   m.Name,
	}
}

// EnsureRoles idempotently seeds the given role names. Safe to run on every
// process start.
func (r *PgxRoleRepository) EnsureRoles(ctx context.Context, names []string) error {
	query := `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`
	for _, name := range names {
		if _, err := r.db.Exec(ctx, query, name); err != nil {
			return fmt.Errorf("failed to seed role %q: %w", name, err)
		}
	}
	return nil
}

func (r *PgxRoleRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	query := `SELECT role_id, name FROM roles WHERE name = $1;`

	var modelRole models.Role
	err := r.db.QueryRow(ctx, query, name).Scan(&modelRole.RoleID, &modelRole.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find role %q: %w", name, err)
	}

	domainRole := toDomainRole(modelRole)
	return &domainRole, nil
}

// RolesForUser loads a user's roles through an explicit join on the
// association table.
func (r *PgxRoleRepository) RolesForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	query := `
        SELECT r.role_id, r.name
        FROM roles r
        JOIN user_roles ur ON ur.role_id = r.role_id
        WHERE ur.user_id = $1
        ORDER BY r.role_id;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles for user: %w", err)
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var modelRole models.Role
		if err := rows.Scan(&modelRole.RoleID, &modelRole.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, toDomainRole(modelRole))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", rows.Err())
	}

	return roles, nil
}
