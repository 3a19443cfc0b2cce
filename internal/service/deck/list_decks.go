package deck

import (
	"context"
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// ListDecks returns all decks of the authenticated user with flashcard counts,
// newest first.
func (s *Service) ListDecks(ctx context.Context) ([]domain.DeckWithCount, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	decks, err := s.decks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	return decks, nil
}
