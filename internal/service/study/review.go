package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// ReviewInput holds the parameters for reviewing a flashcard.
type ReviewInput struct {
	CardID uuid.UUID
	Rating string
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !domain.ReviewRating(i.Rating).IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be one of: again, hard, good, easy"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Review records a review of a flashcard and reschedules it.
func (s *Service) Review(ctx context.Context, input ReviewInput) (domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Flashcard{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	card, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("get flashcard: %w", err)
	}

	now := s.now()
	out := CalculateSRS(SRSInput{
		CurrentStatus:   card.Status,
		CurrentInterval: card.IntervalDays,
		CurrentEase:     card.EaseFactor,
		Repetitions:     card.Repetitions,
		Rating:          domain.ReviewRating(input.Rating),
		Now:             now,
		Config:          s.cfg,
	})

	updated, err := s.cards.UpdateSRS(ctx, userID, card.ID, domain.SRSState{
		Status:         out.NewStatus,
		IntervalDays:   out.NewInterval,
		EaseFactor:     out.NewEase,
		Repetitions:    out.Repetitions,
		DueAt:          &out.DueAt,
		LastReviewedAt: &now,
	})
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("store review: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard reviewed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("rating", input.Rating),
		slog.Int("interval_days", out.NewInterval),
	)

	return updated, nil
}
