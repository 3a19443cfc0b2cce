package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Logout revokes the presented refresh token. Logout is idempotent: an
// unknown or already revoked token still succeeds so clients can always
// clear their session.
func (s *Service) Logout(ctx context.Context, input LogoutInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	hash := s.jwt.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout get token: %w", err)
	}

	if err := s.tokens.Revoke(ctx, token.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout revoke token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", token.UserID.String()))

	return nil
}
