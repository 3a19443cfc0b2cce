package generation

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// GenerateInput holds the parameters for an AI generation request.
type GenerateInput struct {
	DeckID uuid.UUID
	Text   string
}

// Validate checks all fields and collects all errors.
// Length bounds apply to the trimmed text.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}

	// Bounds are in characters, not bytes, so non-ASCII input is not
	// penalized for its encoding.
	text := strings.TrimSpace(i.Text)
	length := utf8.RuneCountInString(text)
	if length < domain.GenerationTextMinLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "min 50 characters"})
	}
	if length > domain.GenerationTextMaxLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
