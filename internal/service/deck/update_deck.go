package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// UpdateDeck changes a deck's name and description.
func (s *Service) UpdateDeck(ctx context.Context, input UpdateDeckInput) (domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Deck{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Deck{}, err
	}

	updated, err := s.decks.Update(ctx, userID, input.DeckID,
		strings.TrimSpace(input.Name), trimOrNil(input.Description))
	if err != nil {
		return domain.Deck{}, fmt.Errorf("update deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck updated",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", updated.ID.String()),
	)

	return updated, nil
}
