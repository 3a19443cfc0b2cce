// Package flashcard implements flashcard CRUD and the batch save operation.
package flashcard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	fcrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// cardRepo defines the flashcard repository interface needed by this service.
type cardRepo interface {
	Create(ctx context.Context, c domain.Flashcard) (domain.Flashcard, error)
	CreateBatch(ctx context.Context, cards []domain.Flashcard) ([]domain.Flashcard, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Flashcard, error)
	List(ctx context.Context, userID uuid.UUID, filter fcrepo.Filter) ([]domain.Flashcard, int, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch fcrepo.UpdateContent) (domain.Flashcard, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// deckRepo defines the deck repository interface needed for ownership checks.
type deckRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Deck, error)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides flashcard operations.
type Service struct {
	cards cardRepo
	decks deckRepo
	tx    txManager
	srs   config.SRSConfig
	log   *slog.Logger
}

// NewService creates a new flashcard service.
func NewService(
	logger *slog.Logger,
	cards cardRepo,
	decks deckRepo,
	tx txManager,
	srs config.SRSConfig,
) *Service {
	return &Service{
		cards: cards,
		decks: decks,
		tx:    tx,
		srs:   srs,
		log:   logger.With("service", "flashcard"),
	}
}

// newCard builds a fresh flashcard in status "new" with the configured
// default ease factor. ai_accepted stays nil for manual cards.
func (s *Service) newCard(userID, deckID uuid.UUID, front, back string, aiGenerated bool, aiAccepted *bool) domain.Flashcard {
	return domain.Flashcard{
		ID:           uuid.New(),
		UserID:       userID,
		DeckID:       deckID,
		FrontContent: front,
		BackContent:  back,
		Status:       domain.FlashcardStatusNew,
		AIGenerated:  aiGenerated,
		AIAccepted:   aiAccepted,
		EaseFactor:   s.srs.DefaultEaseFactor,
	}
}
