package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// DeleteCard removes a flashcard of the authenticated user.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if cardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
	)

	return nil
}
