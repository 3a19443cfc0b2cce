package flashcard

import (
	"context"
	"fmt"

	fcrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// ListResult is a page of flashcards plus the total match count.
type ListResult struct {
	Cards []domain.Flashcard
	Total int
}

// ListCards returns flashcards of the authenticated user matching the filter.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) (ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ListResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ListResult{}, err
	}

	filter := fcrepo.Filter{
		DeckID:      input.DeckID,
		AIGenerated: input.AIGenerated,
		SortBy:      input.SortBy,
		SortOrder:   input.SortOrder,
		Limit:       input.Limit,
		Offset:      input.Offset,
	}
	if input.Status != nil {
		status := domain.FlashcardStatus(*input.Status)
		filter.Status = &status
	}

	cards, total, err := s.cards.List(ctx, userID, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("list flashcards: %w", err)
	}

	return ListResult{Cards: cards, Total: total}, nil
}
