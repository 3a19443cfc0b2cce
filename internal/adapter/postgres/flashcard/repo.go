// Package flashcard implements the PostgreSQL repository for flashcards.
package flashcard

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo is the PostgreSQL repository for flashcards.
// Reads and writes are scoped by owner, same as decks.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const cardColumns = `id, user_id, deck_id, front_content, back_content, status,
	ai_generated, ai_accepted, interval_days, ease_factor, repetitions,
	due_at, last_reviewed_at, created_at, updated_at`

func scanCard(row pgx.Row) (domain.Flashcard, error) {
	var c domain.Flashcard
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.DeckID,
		&c.FrontContent,
		&c.BackContent,
		&c.Status,
		&c.AIGenerated,
		&c.AIAccepted,
		&c.IntervalDays,
		&c.EaseFactor,
		&c.Repetitions,
		&c.DueAt,
		&c.LastReviewedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func scanCards(rows pgx.Rows) ([]domain.Flashcard, error) {
	defer rows.Close()

	var cards []domain.Flashcard
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// Create inserts a new flashcard and returns the stored row.
// Returns domain.ErrNotFound if the deck does not exist (FK violation).
func (r *Repo) Create(ctx context.Context, c domain.Flashcard) (domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO flashcards (id, user_id, deck_id, front_content, back_content,
			status, ai_generated, ai_accepted, ease_factor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, cardColumns)

	created, err := scanCard(q.QueryRow(ctx, query,
		c.ID, c.UserID, c.DeckID, c.FrontContent, c.BackContent,
		c.Status, c.AIGenerated, c.AIAccepted, c.EaseFactor,
	))
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", c.ID)
	}

	return created, nil
}

// CreateBatch inserts multiple flashcards in insertion order and returns the
// stored rows. Callers wrap this in a transaction for all-or-nothing semantics.
func (r *Repo) CreateBatch(ctx context.Context, cards []domain.Flashcard) ([]domain.Flashcard, error) {
	if len(cards) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO flashcards (id, user_id, deck_id, front_content, back_content,
			status, ai_generated, ai_accepted, ease_factor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, cardColumns)

	batch := &pgx.Batch{}
	for _, c := range cards {
		batch.Queue(query,
			c.ID, c.UserID, c.DeckID, c.FrontContent, c.BackContent,
			c.Status, c.AIGenerated, c.AIAccepted, c.EaseFactor,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]domain.Flashcard, 0, len(cards))
	for i := range cards {
		c, err := scanCard(results.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "flashcard", cards[i].ID)
		}
		created = append(created, c)
	}

	return created, nil
}

// GetByID fetches a flashcard owned by userID.
// Returns domain.ErrNotFound if absent or owned by someone else.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`SELECT %s FROM flashcards WHERE id = $1 AND user_id = $2`, cardColumns)

	c, err := scanCard(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", id)
	}

	return c, nil
}

// List returns flashcards of a user matching the filter plus the total count
// ignoring limit/offset.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter Filter) ([]domain.Flashcard, int, error) {
	filter.normalize()

	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.DeckID != nil {
		where = append(where, sq.Eq{"deck_id": *filter.DeckID})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": *filter.Status})
	}
	if filter.AIGenerated != nil {
		where = append(where, sq.Eq{"ai_generated": *filter.AIGenerated})
	}

	countSQL, countArgs, err := builder.
		Select("COUNT(*)").
		From("flashcards").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "flashcard", uuid.Nil)
	}

	// NULLS LAST keeps unscheduled cards at the end when sorting by due_at.
	orderBy := fmt.Sprintf("%s %s NULLS LAST, id %s", filter.SortBy, filter.SortOrder, filter.SortOrder)

	listSQL, listArgs, err := builder.
		Select(cardColumns).
		From("flashcards").
		Where(where).
		OrderBy(orderBy).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "flashcard", uuid.Nil)
	}

	cards, err := scanCards(rows)
	if err != nil {
		return nil, 0, postgres.MapError(err, "flashcard", uuid.Nil)
	}

	return cards, total, nil
}

// UpdateContent is the patch for content fields. nil fields are left unchanged.
type UpdateContent struct {
	FrontContent *string
	BackContent  *string
	Status       *domain.FlashcardStatus
	DeckID       *uuid.UUID
}

// Update applies a partial content update to a flashcard owned by userID
// and returns the updated row. At least one field must be set; the service
// layer validates that before calling.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, patch UpdateContent) (domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := builder.
		Update("flashcards").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + cardColumns)

	if patch.FrontContent != nil {
		update = update.Set("front_content", *patch.FrontContent)
	}
	if patch.BackContent != nil {
		update = update.Set("back_content", *patch.BackContent)
	}
	if patch.Status != nil {
		update = update.Set("status", string(*patch.Status))
	}
	if patch.DeckID != nil {
		update = update.Set("deck_id", *patch.DeckID)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("build update query: %w", err)
	}

	c, err := scanCard(q.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", id)
	}

	return c, nil
}

// UpdateSRS stores the result of a review: new scheduling state plus status.
func (r *Repo) UpdateSRS(ctx context.Context, userID, id uuid.UUID, state domain.SRSState) (domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`
		UPDATE flashcards
		SET status = $3, interval_days = $4, ease_factor = $5, repetitions = $6,
		    due_at = $7, last_reviewed_at = $8, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING %s`, cardColumns)

	c, err := scanCard(q.QueryRow(ctx, query,
		id, userID,
		state.Status, state.IntervalDays, state.EaseFactor, state.Repetitions,
		state.DueAt, state.LastReviewedAt,
	))
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", id)
	}

	return c, nil
}

// Delete removes a flashcard owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM flashcards WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return postgres.MapError(err, "flashcard", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListDue returns cards of a user that are due for review at `now`,
// most overdue first. Cards with NULL due_at are never due.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT %s FROM flashcards
		WHERE user_id = $1 AND due_at IS NOT NULL AND due_at <= $2
		ORDER BY due_at ASC
		LIMIT $3`, cardColumns)

	rows, err := q.Query(ctx, query, userID, now, limit)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", uuid.Nil)
	}

	cards, err := scanCards(rows)
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", uuid.Nil)
	}

	return cards, nil
}

// CountAIGeneratedBetween counts AI generated cards a user saved inside the
// [start, end] window. Used for daily quota accounting.
func (r *Repo) CountAIGeneratedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := `
		SELECT COUNT(*) FROM flashcards
		WHERE user_id = $1 AND ai_generated = TRUE
		  AND created_at >= $2 AND created_at <= $3`

	var count int
	if err := q.QueryRow(ctx, query, userID, start, end).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "flashcard", uuid.Nil)
	}

	return count, nil
}
