package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Login authenticates a user by email and password.
// Wrong email and wrong password both return ErrUnauthorized so an attacker
// cannot probe which emails are registered.
func (s *Service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResult{}, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
		}
		return AuthResult{}, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return AuthResult{}, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
