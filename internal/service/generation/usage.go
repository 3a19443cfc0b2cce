package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// Usage reports a user's AI generation quota for the current UTC day.
type Usage struct {
	Limit     int
	Used      int
	Remaining int
	ResetsAt  time.Time
}

// dayWindow returns the inclusive bounds of the UTC calendar day containing t.
// Quota counts cards saved between 00:00:00.000 and 23:59:59.999 UTC.
func dayWindow(t time.Time) (start, end time.Time) {
	t = t.UTC()
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// nextReset returns the next UTC midnight after t.
func nextReset(t time.Time) time.Time {
	start, _ := dayWindow(t)
	return start.Add(24 * time.Hour)
}

// CheckUsage returns the authenticated user's quota state for today.
func (s *Service) CheckUsage(ctx context.Context) (Usage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Usage{}, domain.ErrUnauthorized
	}

	now := s.now()
	start, end := dayWindow(now)

	used, err := s.cards.CountAIGeneratedBetween(ctx, userID, start, end)
	if err != nil {
		return Usage{}, fmt.Errorf("count generated cards: %w", err)
	}

	remaining := s.cfg.DailyLimit - used
	if remaining < 0 {
		remaining = 0
	}

	return Usage{
		Limit:     s.cfg.DailyLimit,
		Used:      used,
		Remaining: remaining,
		ResetsAt:  nextReset(now),
	}, nil
}
