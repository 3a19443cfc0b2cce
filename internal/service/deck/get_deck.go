package deck

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// GetDeck returns a single deck of the authenticated user.
// A deck owned by another user returns ErrNotFound, never ErrForbidden.
func (s *Service) GetDeck(ctx context.Context, deckID uuid.UUID) (domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Deck{}, domain.ErrUnauthorized
	}

	if deckID == uuid.Nil {
		return domain.Deck{}, domain.NewValidationError("deck_id", "required")
	}

	d, err := s.decks.GetByID(ctx, userID, deckID)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("get deck: %w", err)
	}

	return d, nil
}
