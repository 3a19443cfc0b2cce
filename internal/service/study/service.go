// Package study implements due card listing and review scheduling.
package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// cardRepo defines the flashcard repository interface needed by this service.
type cardRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Flashcard, error)
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Flashcard, error)
	UpdateSRS(ctx context.Context, userID, id uuid.UUID, state domain.SRSState) (domain.Flashcard, error)
}

// Service provides study operations.
type Service struct {
	cards cardRepo
	cfg   config.SRSConfig
	log   *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new study service.
func NewService(logger *slog.Logger, cards cardRepo, cfg config.SRSConfig) *Service {
	return &Service{
		cards: cards,
		cfg:   cfg,
		log:   logger.With("service", "study"),
		now:   time.Now,
	}
}
