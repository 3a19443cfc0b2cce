package auth

import "github.com/heartmarshall/flashcards-backend/internal/domain"

// AuthResult is returned by Register, Login and Refresh.
// RefreshToken holds the raw token; only its hash is stored server-side.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         domain.User
}
