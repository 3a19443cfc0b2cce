package flashcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// GetCard returns a single flashcard of the authenticated user.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	if cardID == uuid.Nil {
		return domain.Flashcard{}, domain.NewValidationError("card_id", "required")
	}

	c, err := s.cards.GetByID(ctx, userID, cardID)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("get flashcard: %w", err)
	}

	return c, nil
}
