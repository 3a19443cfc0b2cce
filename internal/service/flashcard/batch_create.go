package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// BatchCreate saves a batch of AI-generated flashcards into one deck.
// The whole batch is atomic: one bad insert rolls back everything.
// Cards come back in the same order they were sent.
func (s *Service) BatchCreate(ctx context.Context, input BatchCreateInput) ([]domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("check deck: %w", err)
	}

	cards := make([]domain.Flashcard, 0, len(input.Cards))
	for _, item := range input.Cards {
		accepted := item.AIAccepted
		cards = append(cards, s.newCard(userID, input.DeckID,
			strings.TrimSpace(item.FrontContent),
			strings.TrimSpace(item.BackContent),
			true, &accepted))
	}

	var created []domain.Flashcard
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.cards.CreateBatch(txCtx, cards)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("batch create flashcards: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard batch saved",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}
