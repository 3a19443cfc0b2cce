package deck

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateDeckInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > domain.DeckNameMaxLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > domain.DeckDescMaxLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDeckInput holds the parameters for updating a deck.
type UpdateDeckInput struct {
	DeckID      uuid.UUID
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > domain.DeckNameMaxLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > domain.DeckDescMaxLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
