package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	logpkg "github.com/sanctuary-tracker/api/internal/logger"
)

// APIResponse is the envelope for all JSON responses
type APIResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// respondJSON sends a success JSON response
func respondJSON(w http.ResponseWriter, status int, data any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed_to_encode_response",
			zap.Error(err),
			zap.Int("status_code", status),
		)
	}
}

// respondError sends an error JSON response
func respondError(w http.ResponseWriter, status int, errorType, message string, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success:   false,
		Error:     errorType,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed_to_encode_error_response",
			zap.Error(err),
			zap.Int("status_code", status),
		)
	}
}

// respondNotFoundOrError maps repository errors onto the error taxonomy:
// wrapped "not found" errors become 404, anything else a generic 500. The
// underlying error is logged server-side, never exposed.
func respondNotFoundOrError(w http.ResponseWriter, err error, resource string, logger *zap.Logger) {
	if strings.Contains(err.Error(), "not found") {
		respondError(w, http.StatusNotFound, "Not Found", resource+" not found", logger)
		return
	}
	logger.Error("store_error",
		zap.String("resource", resource),
		zap.String("error", logpkg.SanitizeError(err)),
	)
	respondError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", logger)
}

// decodeJSON decodes a request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
