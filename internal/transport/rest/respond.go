// Package rest wires the HTTP API: JSON handlers, routing, and the error
// envelope shared by every endpoint.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Error codes used in the error envelope.
const (
	codeValidation    = "VALIDATION_ERROR"
	codeUnauthorized  = "UNAUTHORIZED"
	codeForbidden     = "FORBIDDEN"
	codeNotFound      = "NOT_FOUND"
	codeAlreadyExists = "ALREADY_EXISTS"
	codeGeneration    = "AI_GENERATION_FAILED"
	codeLimitExceeded = "LIMIT_EXCEEDED"
	codeInternal      = "INTERNAL_ERROR"
)

// errorEnvelope is the uniform error response body:
//
//	{"error": {"code": "...", "message": "...", "details": ...}}
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// fieldDetail is one entry in a VALIDATION_ERROR details list.
type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// handleError maps service errors onto the error envelope. Internal details
// never leak to clients: unknown errors are logged and reported as a bare
// INTERNAL_ERROR.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		vErr *domain.ValidationError
		qErr *domain.QuotaError
		gErr *domain.GenerationError
	)

	switch {
	case errors.As(err, &vErr):
		details := make([]fieldDetail, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			details = append(details, fieldDetail{Field: fe.Field, Message: fe.Message})
		}
		writeError(w, http.StatusBadRequest, codeValidation, "validation failed", details)

	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, "validation failed", nil)

	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required", nil)

	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "access denied", nil)

	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found", nil)

	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyExists, "resource already exists", nil)

	case errors.As(err, &qErr):
		writeError(w, http.StatusTooManyRequests, codeLimitExceeded, "daily generation limit reached",
			map[string]any{
				"daily_limit": qErr.Limit,
				"used_today":  qErr.Used,
				"resets_at":   qErr.ResetsAt.UTC().Format(time.RFC3339),
			})

	case errors.As(err, &gErr):
		writeError(w, http.StatusUnprocessableEntity, codeGeneration, gErr.Reason, nil)

	case errors.Is(err, domain.ErrQuotaExceeded):
		writeError(w, http.StatusTooManyRequests, codeLimitExceeded, "daily generation limit reached", nil)

	case errors.Is(err, domain.ErrGenerationFailed):
		writeError(w, http.StatusUnprocessableEntity, codeGeneration, "generation failed", nil)

	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error", nil)
	}
}

// decodeJSON parses a request body into dst. Unknown fields are tolerated
// so clients can send extra keys without breaking.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathUUID parses a UUID path segment. An unparseable ID behaves like a
// missing resource: the caller should answer 404, not 400.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
