package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 8
	passwordMaxLen = 72 // bcrypt input limit
)

// RegisterInput holds the parameters for registering a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	username := strings.TrimSpace(i.Username)
	if len(username) < usernameMinLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "min 3 characters"})
	}
	if len(username) > usernameMaxLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}

	if len(i.Password) < passwordMinLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if len(i.Password) > passwordMaxLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds the raw refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// Validate checks all fields.
func (i RefreshInput) Validate() error {
	if strings.TrimSpace(i.RefreshToken) == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	return nil
}

// LogoutInput holds the raw refresh token to revoke.
type LogoutInput struct {
	RefreshToken string
}

// Validate checks all fields.
func (i LogoutInput) Validate() error {
	if strings.TrimSpace(i.RefreshToken) == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	return nil
}
