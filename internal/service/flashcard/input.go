package flashcard

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// CreateCardInput holds the parameters for manually creating a flashcard.
type CreateCardInput struct {
	DeckID       uuid.UUID
	FrontContent string
	BackContent  string
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	errs = append(errs, validateContent(strings.TrimSpace(i.FrontContent), strings.TrimSpace(i.BackContent), "")...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds the parameters for partially updating a flashcard.
// nil fields are left unchanged; at least one must be set.
type UpdateCardInput struct {
	CardID       uuid.UUID
	FrontContent *string
	BackContent  *string
	Status       *string
	DeckID       *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}

	if i.FrontContent == nil && i.BackContent == nil && i.Status == nil && i.DeckID == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "at least one field must be provided"})
	}

	if i.FrontContent != nil {
		front := strings.TrimSpace(*i.FrontContent)
		if front == "" {
			errs = append(errs, domain.FieldError{Field: "front_content", Message: "required"})
		}
		if len(front) > domain.FrontContentMaxLen {
			errs = append(errs, domain.FieldError{Field: "front_content", Message: "max 1000 characters"})
		}
	}
	if i.BackContent != nil {
		back := strings.TrimSpace(*i.BackContent)
		if back == "" {
			errs = append(errs, domain.FieldError{Field: "back_content", Message: "required"})
		}
		if len(back) > domain.BackContentMaxLen {
			errs = append(errs, domain.FieldError{Field: "back_content", Message: "max 2000 characters"})
		}
	}
	if i.Status != nil && !domain.FlashcardStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: new, learning, review, relearning"})
	}
	if i.DeckID != nil && *i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCardsInput holds the parameters for listing flashcards.
type ListCardsInput struct {
	DeckID      *uuid.UUID
	Status      *string
	AIGenerated *bool
	SortBy      string
	SortOrder   string
	Limit       int
	Offset      int
}

// Validate checks all fields and collects all errors.
func (i ListCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !domain.FlashcardStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: new, learning, review, relearning"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BatchItem is one flashcard to save in a batch.
// AIAccepted distinguishes untouched AI proposals (true) from ones the user
// edited before saving (false).
type BatchItem struct {
	FrontContent string
	BackContent  string
	AIAccepted   bool
}

// BatchCreateInput holds the parameters for saving a batch of AI-generated cards.
type BatchCreateInput struct {
	DeckID uuid.UUID
	Cards  []BatchItem
}

// Validate checks all fields and collects all errors. Item errors are indexed
// so the client can point at the offending card.
func (i BatchCreateInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if len(i.Cards) == 0 {
		errs = append(errs, domain.FieldError{Field: "flashcards", Message: "at least one card is required"})
	}
	if len(i.Cards) > domain.BatchMaxSize {
		errs = append(errs, domain.FieldError{Field: "flashcards", Message: "max 100 cards per batch"})
	}

	for idx, card := range i.Cards {
		prefix := "flashcards[" + strconv.Itoa(idx) + "]."
		errs = append(errs, validateContent(
			strings.TrimSpace(card.FrontContent),
			strings.TrimSpace(card.BackContent),
			prefix,
		)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateContent checks front/back content bounds shared by create and batch.
func validateContent(front, back, fieldPrefix string) []domain.FieldError {
	var errs []domain.FieldError

	if front == "" {
		errs = append(errs, domain.FieldError{Field: fieldPrefix + "front_content", Message: "required"})
	}
	if len(front) > domain.FrontContentMaxLen {
		errs = append(errs, domain.FieldError{Field: fieldPrefix + "front_content", Message: "max 1000 characters"})
	}
	if back == "" {
		errs = append(errs, domain.FieldError{Field: fieldPrefix + "back_content", Message: "required"})
	}
	if len(back) > domain.BackContentMaxLen {
		errs = append(errs, domain.FieldError{Field: fieldPrefix + "back_content", Message: "max 2000 characters"})
	}

	return errs
}
