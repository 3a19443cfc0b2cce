package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateCard manually creates a flashcard in the given deck.
// The deck must exist and belong to the authenticated user.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	// Ownership check doubles as the existence check.
	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return domain.Flashcard{}, fmt.Errorf("check deck: %w", err)
	}

	card := s.newCard(userID, input.DeckID,
		strings.TrimSpace(input.FrontContent),
		strings.TrimSpace(input.BackContent),
		false, nil)

	created, err := s.cards.Create(ctx, card)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("create flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard created",
		slog.String("user_id", userID.String()),
		slog.String("card_id", created.ID.String()),
		slog.String("deck_id", input.DeckID.String()),
	)

	return created, nil
}
