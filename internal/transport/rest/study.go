package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	ListDue(ctx context.Context, limit int) ([]domain.Flashcard, error)
	Review(ctx context.Context, input study.ReviewInput) (domain.Flashcard, error)
}

// StudyHandler serves study REST endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type reviewRequest struct {
	Rating string `json:"rating"`
}

// Due handles GET /flashcards/due.
func (h *StudyHandler) Due(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	cards, err := h.svc.ListDue(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]flashcardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toFlashcardResponse(c))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"flashcards": out,
		"total_due":  len(out),
	})
}

// Review handles POST /flashcards/{id}/review.
func (h *StudyHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found", nil)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body", nil)
		return
	}

	updated, err := h.svc.Review(r.Context(), study.ReviewInput{
		CardID: id,
		Rating: req.Rating,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(updated))
}
