package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a user-owned named collection of flashcards.
type Deck struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeckWithCount pairs a deck with its derived flashcard count for list views.
type DeckWithCount struct {
	Deck
	FlashcardCount int
}
