// Package deck implements deck management operations.
package deck

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// deckRepo defines the deck repository interface needed by the deck service.
type deckRepo interface {
	Create(ctx context.Context, d domain.Deck) (domain.Deck, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Deck, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.DeckWithCount, error)
	Update(ctx context.Context, userID, id uuid.UUID, name string, description *string) (domain.Deck, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by the deck service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides deck management operations.
type Service struct {
	decks deckRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new deck service.
func NewService(logger *slog.Logger, decks deckRepo, tx txManager) *Service {
	return &Service{
		decks: decks,
		tx:    tx,
		log:   logger.With("service", "deck"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
