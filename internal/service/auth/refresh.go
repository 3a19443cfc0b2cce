package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// access/refresh pair is issued.
//
// Replaying an already revoked token revokes every active session of the user.
// A revoked token showing up again means it leaked, and the legitimate holder
// should re-authenticate.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (AuthResult, error) {
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash := s.jwt.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResult{}, fmt.Errorf("auth.Refresh: %w", domain.ErrUnauthorized)
		}
		return AuthResult{}, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() {
		if err := s.tokens.RevokeAllForUser(ctx, token.UserID); err != nil {
			s.log.ErrorContext(ctx, "failed to revoke sessions after token reuse",
				slog.String("user_id", token.UserID.String()),
				slog.String("error", err.Error()))
		}
		s.log.WarnContext(ctx, "revoked refresh token reused",
			slog.String("user_id", token.UserID.String()))
		return AuthResult{}, fmt.Errorf("auth.Refresh: %w", domain.ErrUnauthorized)
	}

	if token.IsExpired(time.Now()) {
		return AuthResult{}, fmt.Errorf("auth.Refresh: %w", domain.ErrUnauthorized)
	}

	if err := s.tokens.Revoke(ctx, token.ID); err != nil {
		return AuthResult{}, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}

	return result, nil
}
