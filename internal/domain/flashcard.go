package domain

import (
	"time"

	"github.com/google/uuid"
)

// FlashcardStatus represents the review-scheduling state of a flashcard.
type FlashcardStatus string

const (
	FlashcardStatusNew        FlashcardStatus = "new"
	FlashcardStatusLearning   FlashcardStatus = "learning"
	FlashcardStatusReview     FlashcardStatus = "review"
	FlashcardStatusRelearning FlashcardStatus = "relearning"
)

func (s FlashcardStatus) String() string { return string(s) }

func (s FlashcardStatus) IsValid() bool {
	switch s {
	case FlashcardStatusNew, FlashcardStatusLearning, FlashcardStatusReview, FlashcardStatusRelearning:
		return true
	}
	return false
}

// ReviewRating is the user's self-assessed recall quality for one review.
type ReviewRating string

const (
	ReviewRatingAgain ReviewRating = "again"
	ReviewRatingHard  ReviewRating = "hard"
	ReviewRatingGood  ReviewRating = "good"
	ReviewRatingEasy  ReviewRating = "easy"
)

func (r ReviewRating) String() string { return string(r) }

func (r ReviewRating) IsValid() bool {
	switch r {
	case ReviewRatingAgain, ReviewRatingHard, ReviewRatingGood, ReviewRatingEasy:
		return true
	}
	return false
}

// Flashcard is a front/back content pair owned by a user and filed in a deck.
//
// AIGenerated marks cards produced by the generation flow. AIAccepted is
// tri-state: nil for manually authored cards, true when AI content was saved
// untouched, false when the user edited it before saving.
type Flashcard struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	DeckID         uuid.UUID
	FrontContent   string
	BackContent    string
	Status         FlashcardStatus
	AIGenerated    bool
	AIAccepted     *bool
	IntervalDays   int
	EaseFactor     float64
	Repetitions    int
	DueAt          *time.Time
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsDue returns true if the card needs review at the given time.
// New cards are always due; others are due once DueAt has passed.
func (f *Flashcard) IsDue(now time.Time) bool {
	if f.Status == FlashcardStatusNew {
		return true
	}
	return f.DueAt != nil && !f.DueAt.After(now)
}

// SRSState is the scheduling snapshot written back after a review.
type SRSState struct {
	Status         FlashcardStatus
	IntervalDays   int
	EaseFactor     float64
	Repetitions    int
	DueAt          *time.Time
	LastReviewedAt *time.Time
}

// Proposal is an ephemeral AI-suggested flashcard awaiting user review.
// It is never persisted; accepting one creates a Flashcard row.
type Proposal struct {
	FrontContent string
	BackContent  string
}

// Content length bounds, enforced both on user input and on AI output.
const (
	FrontContentMaxLen = 1000
	BackContentMaxLen  = 2000
	DeckNameMaxLen     = 100
	DeckDescMaxLen     = 500

	GenerationTextMinLen = 50
	GenerationTextMaxLen = 5000

	BatchMaxSize = 100
)
