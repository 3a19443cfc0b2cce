package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// GenerateResult is a set of proposals plus the quota state after accounting
// for this request. Proposals are not persisted; saving them is a separate
// batch operation.
type GenerateResult struct {
	Proposals []domain.Proposal
	Usage     Usage
}

// Generate produces AI flashcard proposals from source text.
//
// Checks run cheapest-first: input validation, then deck ownership, then
// quota, and only then the provider call. A request that is going to fail
// must never reach the paid API.
//
// Quota is counted against saved cards, not generation requests. Two requests
// racing the same last quota slot can both pass the check; we accept that
// rather than lock on every generation.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (GenerateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return GenerateResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return GenerateResult{}, err
	}

	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return GenerateResult{}, fmt.Errorf("check deck: %w", err)
	}

	usage, err := s.CheckUsage(ctx)
	if err != nil {
		return GenerateResult{}, err
	}
	if usage.Remaining <= 0 {
		return GenerateResult{}, &domain.QuotaError{
			Limit:    usage.Limit,
			Used:     usage.Used,
			ResetsAt: usage.ResetsAt,
		}
	}

	proposals, err := s.ai.Generate(ctx, strings.TrimSpace(input.Text))
	if err != nil {
		s.log.WarnContext(ctx, "generation failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return GenerateResult{}, fmt.Errorf("generate proposals: %w", err)
	}

	s.log.InfoContext(ctx, "proposals generated",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.Int("count", len(proposals)),
	)

	return GenerateResult{Proposals: proposals, Usage: usage}, nil
}
