package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	fcrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// UpdateCard applies a partial update to a flashcard. When moving the card to
// another deck, the target deck must also belong to the user.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	if input.DeckID != nil {
		if _, err := s.decks.GetByID(ctx, userID, *input.DeckID); err != nil {
			return domain.Flashcard{}, fmt.Errorf("check target deck: %w", err)
		}
	}

	patch := fcrepo.UpdateContent{DeckID: input.DeckID}
	if input.FrontContent != nil {
		front := strings.TrimSpace(*input.FrontContent)
		patch.FrontContent = &front
	}
	if input.BackContent != nil {
		back := strings.TrimSpace(*input.BackContent)
		patch.BackContent = &back
	}
	if input.Status != nil {
		status := domain.FlashcardStatus(*input.Status)
		patch.Status = &status
	}

	updated, err := s.cards.Update(ctx, userID, input.CardID, patch)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("update flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", updated.ID.String()),
	)

	return updated, nil
}
