// Package user implements the PostgreSQL repository for user accounts.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo is the PostgreSQL repository for users.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create inserts a new user and returns the stored row.
// Returns domain.ErrAlreadyExists if the email or username is taken.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO users (id, email, username, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, userColumns)

	created, err := scanUser(q.QueryRow(ctx, query, u.ID, u.Email, u.Username, u.PasswordHash))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// GetByID fetches a user by ID. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail fetches a user by email. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}
