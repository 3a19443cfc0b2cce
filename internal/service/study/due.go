package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// ListDue returns the authenticated user's cards that are due for review,
// most overdue first. limit <= 0 falls back to the configured default.
func (s *Service) ListDue(ctx context.Context, limit int) ([]domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit <= 0 || limit > s.cfg.DueLimit {
		limit = s.cfg.DueLimit
	}

	cards, err := s.cards.ListDue(ctx, userID, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}

	return cards, nil
}
