package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

// generationService defines the minimal interface needed by GenerationHandler.
type generationService interface {
	Generate(ctx context.Context, input generation.GenerateInput) (generation.GenerateResult, error)
	CheckUsage(ctx context.Context) (generation.Usage, error)
}

// GenerationHandler serves AI generation REST endpoints.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

type generateRequest struct {
	DeckID string `json:"deck_id"`
	Text   string `json:"text"`
}

type proposalResponse struct {
	FrontContent string `json:"front_content"`
	BackContent  string `json:"back_content"`
}

type generateUsageResponse struct {
	GeneratedCount      int `json:"generated_count"`
	TotalGeneratedToday int `json:"total_generated_today"`
	DailyLimit          int `json:"daily_limit"`
}

type limitsResponse struct {
	DailyLimit     int       `json:"daily_limit"`
	UsedToday      int       `json:"used_today"`
	RemainingToday int       `json:"remaining_today"`
	ResetsAt       time.Time `json:"resets_at"`
}

// Generate handles POST /flashcards/generate.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body", nil)
		return
	}

	deckID, _ := uuid.Parse(req.DeckID)

	result, err := h.svc.Generate(r.Context(), generation.GenerateInput{
		DeckID: deckID,
		Text:   req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	proposals := make([]proposalResponse, 0, len(result.Proposals))
	for _, p := range result.Proposals {
		proposals = append(proposals, proposalResponse{
			FrontContent: p.FrontContent,
			BackContent:  p.BackContent,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"proposals": proposals,
		"usage": generateUsageResponse{
			GeneratedCount:      len(proposals),
			TotalGeneratedToday: result.Usage.Used,
			DailyLimit:          result.Usage.Limit,
		},
	})
}

// Limits handles GET /me/limits.
func (h *GenerationHandler) Limits(w http.ResponseWriter, r *http.Request) {
	usage, err := h.svc.CheckUsage(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, limitsResponse{
		DailyLimit:     usage.Limit,
		UsedToday:      usage.Used,
		RemainingToday: usage.Remaining,
		ResetsAt:       usage.ResetsAt,
	})
}
