package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Deck      *DeckHandler
	Flashcard *FlashcardHandler
	Gen       *GenerationHandler
	Study     *StudyHandler
	Health    *HealthHandler
}

// NewRouter builds the ServeMux with method-qualified patterns.
// Auth, CORS, logging and the rest of the middleware chain wrap the
// returned handler at the app level.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Health probes.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	// Auth.
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	// Current user.
	mux.HandleFunc("GET /me", h.Auth.Me)
	mux.HandleFunc("GET /me/limits", h.Gen.Limits)

	// Decks.
	mux.HandleFunc("POST /decks", h.Deck.Create)
	mux.HandleFunc("GET /decks", h.Deck.List)
	mux.HandleFunc("GET /decks/{id}", h.Deck.Get)
	mux.HandleFunc("PATCH /decks/{id}", h.Deck.Update)
	mux.HandleFunc("DELETE /decks/{id}", h.Deck.Delete)

	// Flashcards. Literal segments (generate, batch, due) must be
	// registered alongside the {id} wildcard; the mux prefers them.
	mux.HandleFunc("POST /flashcards", h.Flashcard.Create)
	mux.HandleFunc("GET /flashcards", h.Flashcard.List)
	mux.HandleFunc("POST /flashcards/generate", h.Gen.Generate)
	mux.HandleFunc("POST /flashcards/batch", h.Flashcard.BatchCreate)
	mux.HandleFunc("GET /flashcards/due", h.Study.Due)
	mux.HandleFunc("GET /flashcards/{id}", h.Flashcard.Get)
	mux.HandleFunc("PATCH /flashcards/{id}", h.Flashcard.Update)
	mux.HandleFunc("DELETE /flashcards/{id}", h.Flashcard.Delete)
	mux.HandleFunc("POST /flashcards/{id}/review", h.Study.Review)

	return mux
}
