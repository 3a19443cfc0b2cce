package flashcard

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Filter defines parameters for listing and paginating flashcards.
type Filter struct {
	// DeckID restricts the listing to one deck. nil means all decks of the user.
	DeckID *uuid.UUID

	// Status filters by learning status.
	Status *domain.FlashcardStatus

	// AIGenerated filters cards that were (true) or were not (false) AI generated.
	AIGenerated *bool

	// SortBy determines the sort column: "created_at", "updated_at", "due_at".
	// Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of cards to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of cards to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"
	sortByDueAt     = "due_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByCreatedAt, sortByUpdatedAt, sortByDueAt:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}
