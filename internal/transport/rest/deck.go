package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/deck"
)

// deckService defines the minimal interface needed by DeckHandler.
type deckService interface {
	CreateDeck(ctx context.Context, input deck.CreateDeckInput) (domain.Deck, error)
	ListDecks(ctx context.Context) ([]domain.DeckWithCount, error)
	GetDeck(ctx context.Context, deckID uuid.UUID) (domain.Deck, error)
	UpdateDeck(ctx context.Context, input deck.UpdateDeckInput) (domain.Deck, error)
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error
}

// DeckHandler serves deck REST endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type deckRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type deckResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type deckWithCountResponse struct {
	deckResponse
	FlashcardCount int `json:"flashcard_count"`
}

// Create handles POST /decks.
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body", nil)
		return
	}

	created, err := h.svc.CreateDeck(r.Context(), deck.CreateDeckInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(created))
}

// List handles GET /decks.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.ListDecks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]deckWithCountResponse, 0, len(decks))
	for _, d := range decks {
		out = append(out, deckWithCountResponse{
			deckResponse:   toDeckResponse(d.Deck),
			FlashcardCount: d.FlashcardCount,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"decks": out})
}

// Get handles GET /decks/{id}.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found", nil)
		return
	}

	d, err := h.svc.GetDeck(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(d))
}

// Update handles PATCH /decks/{id}.
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found", nil)
		return
	}

	var req deckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body", nil)
		return
	}

	updated, err := h.svc.UpdateDeck(r.Context(), deck.UpdateDeckInput{
		DeckID:      id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(updated))
}

// Delete handles DELETE /decks/{id}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found", nil)
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func toDeckResponse(d domain.Deck) deckResponse {
	return deckResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
