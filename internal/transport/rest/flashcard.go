package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
)

// flashcardService defines the minimal interface needed by FlashcardHandler.
type flashcardService interface {
	CreateCard(ctx context.Context, input flashcard.CreateCardInput) (domain.Flashcard, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (domain.Flashcard, error)
	ListCards(ctx context.Context, input flashcard.ListCardsInput) (flashcard.ListResult, error)
	UpdateCard(ctx context.Context, input flashcard.UpdateCardInput) (domain.Flashcard, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	BatchCreate(ctx context.Context, input flashcard.BatchCreateInput) ([]domain.Flashcard, error)
}

// FlashcardHandler serves flashcard REST endpoints.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type createCardRequest struct {
	DeckID       string `json:"deck_id"`
	FrontContent string `json:"front_content"`
	BackContent  string `json:"back_content"`
}

type updateCardRequest struct {
	FrontContent *string `json:"front_content"`
	BackContent  *string `json:"back_content"`
	Status       *string `json:"status"`
	DeckID       *string `json:"deck_id"`
}

type batchCardRequest struct {
	FrontContent string `json:"front_content"`
	BackContent  string `json:"back_content"`
	AIAccepted   bool   `json:"ai_accepted"`
}

type batchCreateRequest struct {
	DeckID     string             `json:"deck_id"`
	Flashcards []batchCardRequest `json:"flashcards"`
}

type flashcardResponse struct {
	ID             string     `json:"id"`
	DeckID         string     `json:"deck_id"`
	FrontContent   string     `json:"front_content"`
	BackContent    string     `json:"back_content"`
	Status         string     `json:"status"`
	AIGenerated    bool       `json:"ai_generated"`
	AIAccepted     *bool      `json:"ai_accepted"`
	IntervalDays   int        `json:"interval_days"`
	EaseFactor     float64    `json:"ease_factor"`
	Repetitions    int        `json:"repetitions"`
	DueAt          *time.Time `json:"due_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Create handles POST /flashcards.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body", nil)
		return
	}

	deckID, _ := uuid.Parse(req.DeckID) // uuid.Nil fails input validation

	created, err := h.svc.CreateCard(r.Context(), flashcard.CreateCardInput{
		DeckID:       deckID,
		FrontContent: req.FrontContent,
		BackContent:  req.BackContent,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFlashcardResponse(created))
}

const (
	listDefaultLimit = 50
	listMaxLimit     = 200
)

type paginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// List handles GET /flashcards with optional filters:
// deck_id, status, ai_generated, sort, order, page, limit.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if raw := q.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	limit := listDefaultLimit
	if raw := q.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > listMaxLimit {
		limit = listMaxLimit
	}

	input := flashcard.ListCardsInput{
		SortBy:    q.Get("sort"),
		SortOrder: strings.ToUpper(q.Get("order")),
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	if raw := q.Get("deck_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "validation failed",
				[]fieldDetail{{Field: "deck_id", Message: "must be a valid UUID"}})
			return
		}
		input.DeckID = &id
	}
	if raw := q.Get("status"); raw != "" {
		input.Status = &raw
	}
	if raw := q.Get("ai_generated"); raw != "" {
		v := raw == "true"
		input.AIGenerated = &v
	}

	result, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	cards := make([]flashcardResponse, 0, len(result.Cards))
	for _, c := range result.Cards {
		cards = append(cards, toFlashcardResponse(c))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data": cards,
		"pagination": paginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      result.Total,
			TotalPages: (result.Total + limit - 1) / limit,
		},
	})
}

// Get handles GET /flashcards/{id}.
func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found", nil)
		return
	}

	c, err := h.svc.GetCard(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(c))
}

// Update handles PATCH /flashcards/{id}.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found", nil)
		return
	}

	var req updateCardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body", nil)
		return
	}

	input := flashcard.UpdateCardInput{
		CardID:       id,
		FrontContent: req.FrontContent,
		BackContent:  req.BackContent,
		Status:       req.Status,
	}
	if req.DeckID != nil {
		deckID, err := uuid.Parse(*req.DeckID)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "validation failed",
				[]fieldDetail{{Field: "deck_id", Message: "must be a valid UUID"}})
			return
		}
		input.DeckID = &deckID
	}

	updated, err := h.svc.UpdateCard(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(updated))
}

// Delete handles DELETE /flashcards/{id}.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found", nil)
		return
	}

	if err := h.svc.DeleteCard(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// BatchCreate handles POST /flashcards/batch.
func (h *FlashcardHandler) BatchCreate(w http.ResponseWriter, r *http.Request) {
	var req batchCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body", nil)
		return
	}

	deckID, _ := uuid.Parse(req.DeckID)

	cards := make([]flashcard.BatchItem, 0, len(req.Flashcards))
	for _, c := range req.Flashcards {
		cards = append(cards, flashcard.BatchItem{
			FrontContent: c.FrontContent,
			BackContent:  c.BackContent,
			AIAccepted:   c.AIAccepted,
		})
	}

	created, err := h.svc.BatchCreate(r.Context(), flashcard.BatchCreateInput{
		DeckID: deckID,
		Cards:  cards,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]flashcardResponse, 0, len(created))
	for _, c := range created {
		out = append(out, toFlashcardResponse(c))
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"created": out,
		"count":   len(out),
	})
}

func toFlashcardResponse(c domain.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:             c.ID.String(),
		DeckID:         c.DeckID.String(),
		FrontContent:   c.FrontContent,
		BackContent:    c.BackContent,
		Status:         c.Status.String(),
		AIGenerated:    c.AIGenerated,
		AIAccepted:     c.AIAccepted,
		IntervalDays:   c.IntervalDays,
		EaseFactor:     c.EaseFactor,
		Repetitions:    c.Repetitions,
		DueAt:          c.DueAt,
		LastReviewedAt: c.LastReviewedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
