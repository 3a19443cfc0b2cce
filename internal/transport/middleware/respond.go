package middleware

import (
	"encoding/json"
	"net/http"
)

// writeErrorJSON emits the API error envelope. Duplicated from the rest
// package in miniature to avoid an import cycle.
func writeErrorJSON(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
