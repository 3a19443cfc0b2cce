package study

import (
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// SRSInput holds all data needed for the scheduling calculation.
// Pure value, no side effects.
type SRSInput struct {
	CurrentStatus   domain.FlashcardStatus
	CurrentInterval int
	CurrentEase     float64
	Repetitions     int
	Rating          domain.ReviewRating
	Now             time.Time
	Config          config.SRSConfig
}

// SRSOutput is the result of the scheduling calculation.
type SRSOutput struct {
	NewStatus   domain.FlashcardStatus
	NewInterval int
	NewEase     float64
	Repetitions int
	DueAt       time.Time
}

// CalculateSRS computes the next review schedule for a card, SM-2 style.
// Pure function: no DB, no context, no logger.
//
// "again" is a lapse: the card drops to relearning with a one-day interval
// and loses ease. "hard" grows the interval slowly and costs some ease.
// "good" follows the classic 1, 6, interval*ease progression. "easy" adds
// ease and applies a bonus multiplier.
func CalculateSRS(input SRSInput) SRSOutput {
	ease := input.CurrentEase
	if ease <= 0 {
		ease = input.Config.DefaultEaseFactor
	}

	var out SRSOutput

	switch input.Rating {
	case domain.ReviewRatingAgain:
		out = SRSOutput{
			NewStatus:   domain.FlashcardStatusRelearning,
			NewInterval: 1,
			NewEase:     maxFloat(input.Config.MinEaseFactor, ease-0.20),
			Repetitions: 0,
		}

	case domain.ReviewRatingHard:
		interval := maxInt(input.CurrentInterval+1, int(float64(input.CurrentInterval)*1.2))
		if input.Repetitions == 0 {
			interval = 1
		}
		out = SRSOutput{
			NewStatus:   statusAfterSuccess(input.Repetitions + 1),
			NewInterval: interval,
			NewEase:     maxFloat(input.Config.MinEaseFactor, ease-0.15),
			Repetitions: input.Repetitions + 1,
		}

	case domain.ReviewRatingGood:
		out = SRSOutput{
			NewStatus:   statusAfterSuccess(input.Repetitions + 1),
			NewInterval: goodInterval(input.Repetitions, input.CurrentInterval, ease),
			NewEase:     ease,
			Repetitions: input.Repetitions + 1,
		}

	case domain.ReviewRatingEasy:
		interval := goodInterval(input.Repetitions, input.CurrentInterval, ease)
		interval = maxInt(interval+1, int(float64(interval)*1.3))
		out = SRSOutput{
			NewStatus:   domain.FlashcardStatusReview,
			NewInterval: interval,
			NewEase:     ease + 0.15,
			Repetitions: input.Repetitions + 1,
		}

	default:
		// Unknown ratings are rejected at the input layer; keep the card as is.
		out = SRSOutput{
			NewStatus:   input.CurrentStatus,
			NewInterval: input.CurrentInterval,
			NewEase:     ease,
			Repetitions: input.Repetitions,
		}
	}

	out.NewInterval = minInt(out.NewInterval, input.Config.MaxIntervalDays)
	if out.NewInterval < 1 {
		out.NewInterval = 1
	}
	out.DueAt = input.Now.Add(time.Duration(out.NewInterval) * 24 * time.Hour)

	return out
}

// goodInterval is the classic SM-2 progression: 1 day, then 6 days, then
// the previous interval scaled by ease.
func goodInterval(repetitions, currentInterval int, ease float64) int {
	switch repetitions {
	case 0:
		return 1
	case 1:
		return 6
	default:
		return maxInt(currentInterval+1, int(float64(currentInterval)*ease))
	}
}

// statusAfterSuccess maps successful repetition counts to a status:
// one success keeps the card learning, two or more graduate it to review.
func statusAfterSuccess(repetitions int) domain.FlashcardStatus {
	if repetitions >= 2 {
		return domain.FlashcardStatusReview
	}
	return domain.FlashcardStatusLearning
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
