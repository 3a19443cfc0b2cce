package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// SQLSTATE class 23 (integrity constraint violation) codes the repos care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// MapError translates pgx errors into domain errors, annotated with the
// entity name and id. Context cancellation and deadline errors pass through
// untranslated.
//
// Foreign key violations map to domain.ErrNotFound on purpose: a reference to
// a row the caller cannot see must be indistinguishable from a missing row.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	wrap := func(cause error) error {
		return fmt.Errorf("%s %s: %w", entity, id, cause)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return wrap(err)
	case errors.Is(err, pgx.ErrNoRows):
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return wrap(domain.ErrAlreadyExists)
		case pgForeignKeyViolation:
			return wrap(domain.ErrNotFound)
		case pgCheckViolation:
			return wrap(domain.ErrValidation)
		}
	}

	return wrap(err)
}
