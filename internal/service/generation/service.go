// Package generation implements AI flashcard proposal generation with a
// per-user daily quota.
package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// generator defines the AI provider interface needed by this service.
type generator interface {
	Generate(ctx context.Context, text string) ([]domain.Proposal, error)
}

// cardCounter counts saved AI-generated cards for quota accounting.
type cardCounter interface {
	CountAIGeneratedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, error)
}

// deckRepo defines the deck repository interface needed for ownership checks.
type deckRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Deck, error)
}

// Service provides AI generation with quota enforcement.
type Service struct {
	ai    generator
	cards cardCounter
	decks deckRepo
	cfg   config.GenerationConfig
	log   *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new generation service.
func NewService(
	logger *slog.Logger,
	ai generator,
	cards cardCounter,
	decks deckRepo,
	cfg config.GenerationConfig,
) *Service {
	return &Service{
		ai:    ai,
		cards: cards,
		decks: decks,
		cfg:   cfg,
		log:   logger.With("service", "generation"),
		now:   time.Now,
	}
}
