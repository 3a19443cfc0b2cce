// Package deck implements the PostgreSQL repository for decks.
package deck

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo is the PostgreSQL repository for decks.
// All reads and writes are scoped by owner: a deck that belongs to another
// user behaves exactly like a deck that does not exist.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deck repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const deckColumns = `id, user_id, name, description, created_at, updated_at`

func scanDeck(row pgx.Row) (domain.Deck, error) {
	var d domain.Deck
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.Description,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// Create inserts a new deck and returns the stored row.
func (r *Repo) Create(ctx context.Context, d domain.Deck) (domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO decks (id, user_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, deckColumns)

	created, err := scanDeck(q.QueryRow(ctx, query, d.ID, d.UserID, d.Name, d.Description))
	if err != nil {
		return domain.Deck{}, postgres.MapError(err, "deck", d.ID)
	}

	return created, nil
}

// GetByID fetches a deck owned by userID.
// Returns domain.ErrNotFound if absent or owned by someone else.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`SELECT %s FROM decks WHERE id = $1 AND user_id = $2`, deckColumns)

	d, err := scanDeck(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		return domain.Deck{}, postgres.MapError(err, "deck", id)
	}

	return d, nil
}

// ListByUser returns all decks of a user with their flashcard counts,
// newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.DeckWithCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := `
		SELECT d.id, d.user_id, d.name, d.description, d.created_at, d.updated_at,
		       COUNT(f.id) AS flashcard_count
		FROM decks d
		LEFT JOIN flashcards f ON f.deck_id = d.id
		WHERE d.user_id = $1
		GROUP BY d.id
		ORDER BY d.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, postgres.MapError(err, "deck", uuid.Nil)
	}
	defer rows.Close()

	var decks []domain.DeckWithCount
	for rows.Next() {
		var d domain.DeckWithCount
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Name,
			&d.Description,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.FlashcardCount,
		); err != nil {
			return nil, postgres.MapError(err, "deck", uuid.Nil)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "deck", uuid.Nil)
	}

	return decks, nil
}

// Update changes name and description of a deck owned by userID.
// Returns the updated row or domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, name string, description *string) (domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`
		UPDATE decks
		SET name = $3, description = $4, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING %s`, deckColumns)

	d, err := scanDeck(q.QueryRow(ctx, query, id, userID, name, description))
	if err != nil {
		return domain.Deck{}, postgres.MapError(err, "deck", id)
	}

	return d, nil
}

// Delete removes a deck owned by userID. Flashcards inside the deck are
// removed by the ON DELETE CASCADE constraint. Returns domain.ErrNotFound
// if the deck is absent or owned by someone else.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM decks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return postgres.MapError(err, "deck", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
