package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateDeck creates a new deck for the authenticated user.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Deck{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Deck{}, err
	}

	created, err := s.decks.Create(ctx, domain.Deck{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		return domain.Deck{}, fmt.Errorf("create deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", created.ID.String()),
	)

	return created, nil
}
