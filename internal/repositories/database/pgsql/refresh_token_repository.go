package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmalhotra23/flightdeck_backend/internal/apperrors"
	"github.com/rmalhotra23/flightdeck_backend/internal/core/domain"
	portsrepo "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/repositories"
	"github.com/rmalhotra23/flightdeck_backend/internal/models"
)

type PgxRefreshTokenRepository struct {
	db *pgxpool.Pool
}

func newPgxRefreshTokenRepository(db *pgxpool.Pool) portsrepo.RefreshTokenRepositoryFacade {
	return &PgxRefreshTokenRepository{db: db}
}

var _ portsrepo.RefreshTokenRepositoryFacade = (*PgxRefreshTokenRepository)(nil)

func toDomainRefreshToken(m models.RefreshToken) domain.RefreshToken {
	return domain.RefreshToken{
		TokenID:    m.TokenID,
		Token:      m.Token,
		UserID:     m.UserID,
		ExpiryDate: m.ExpiryDate,
	}
}

func (r *PgxRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `
		SELECT token_id, token, user_id, expiry_date
		FROM refresh_tokens
		WHERE token = $1;
	`
	var modelToken models.RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&modelToken.TokenID,
		&modelToken.Token,
		&modelToken.UserID,
		&modelToken.ExpiryDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	domainToken := toDomainRefreshToken(modelToken)
	return &domainToken, nil
}

// Rotate deletes any existing refresh token rows for the user and inserts the
// new one in a single transaction, keeping at most one live token per user.
func (r *PgxRefreshTokenRepository) Rotate(ctx context.Context, userID string, token string, expiryDate time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete previous refresh token: %w", err)
	}

	insert := `
		INSERT INTO refresh_tokens (token_id, token, user_id, expiry_date)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, insert, uuid.NewString(), token, userID, expiryDate); err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit refresh token rotation: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1;`, token); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
