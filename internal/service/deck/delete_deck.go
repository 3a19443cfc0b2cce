package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// DeleteDeck removes a deck and all its flashcards. Runs in a transaction so
// concurrent card inserts cannot survive the deck they point at; the cascade
// itself is a DB constraint.
func (s *Service) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if deckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.decks.Delete(txCtx, userID, deckID)
	})
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deckID.String()),
	)

	return nil
}
