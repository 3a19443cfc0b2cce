// Package token implements the PostgreSQL repository for refresh tokens.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo is the PostgreSQL repository for refresh tokens.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tokenColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

func scanToken(row pgx.Row) (domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.TokenHash,
		&t.ExpiresAt,
		&t.CreatedAt,
		&t.RevokedAt,
	)
	return t, err
}

// Create stores a new refresh token.
func (r *Repo) Create(ctx context.Context, t domain.RefreshToken) (domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, tokenColumns)

	created, err := scanToken(q.QueryRow(ctx, query, t.ID, t.UserID, t.TokenHash, t.ExpiresAt))
	if err != nil {
		return domain.RefreshToken{}, postgres.MapError(err, "refresh token", t.ID)
	}

	return created, nil
}

// GetByHash fetches a refresh token by its SHA-256 hash.
// Returns domain.ErrNotFound if absent.
func (r *Repo) GetByHash(ctx context.Context, hash string) (domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`SELECT %s FROM refresh_tokens WHERE token_hash = $1`, tokenColumns)

	t, err := scanToken(q.QueryRow(ctx, query, hash))
	if err != nil {
		return domain.RefreshToken{}, postgres.MapError(err, "refresh token", uuid.Nil)
	}

	return t, nil
}

// Revoke marks a token as revoked. Idempotent: revoking an already revoked
// token keeps the original revoked_at.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = COALESCE(revoked_at, now())
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return postgres.MapError(err, "refresh token", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refresh token %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// RevokeAllForUser revokes all active tokens of a user. Used on logout-everywhere
// and as a hygiene step when a revoked token is replayed.
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = now()
		WHERE user_id = $1 AND revoked_at IS NULL`

	if _, err := q.Exec(ctx, query, userID); err != nil {
		return postgres.MapError(err, "refresh token", userID)
	}

	return nil
}

// DeleteExpiredBefore removes tokens that expired before the cutoff.
// Returns the number of deleted rows. Used by the cleanup job.
func (r *Repo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1`, cutoff)
	if err != nil {
		return 0, postgres.MapError(err, "refresh token", uuid.Nil)
	}

	return tag.RowsAffected(), nil
}
