package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Player and collection messages
	ErrMsgPlayerNotFoundError   = "Player not found"
	ErrMsgUserCardNotFoundError = "Card not found in your collection"
	ErrMsgImageNotFoundError    = "Image not found"

	// Economy messages
	ErrMsgNotEnoughCoinsError = "Not enough coins"

	// Catalog messages
	ErrMsgNoRaritiesError      = "No rarities defined"
	ErrMsgCatalogIncompleteErr = "Missing game data (variants/styles/themes)"

	// Generation messages
	ErrMsgImageGenerationError = "Image generation failed. Please try again later."
	ErrMsgRerollInProgressErr  = "This card's artwork is already being regenerated"

	// Async job messages
	ErrMsgJobNotFoundError   = "Job not found"
	ErrMsgNoJobHandlerError  = "Handler not found"
	ErrMsgJobHandlerError    = "Job handler failed"
	ErrMsgMissingArtifactErr = "No image data found in callback payload"
	ErrMsgJobTargetKindError = "Job target is not supported"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, userMessage(err, ErrMsgInvalidRequestError)
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrUserCardNotFound):
		return http.StatusNotFound, ErrMsgUserCardNotFoundError
	case errors.Is(err, domain.ErrImageNotFound):
		return http.StatusNotFound, ErrMsgImageNotFoundError
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, ErrMsgJobNotFoundError
	case errors.Is(err, domain.ErrNoRarities):
		return http.StatusInternalServerError, ErrMsgNoRaritiesError
	case errors.Is(err, domain.ErrCatalogIncomplete):
		return http.StatusInternalServerError, ErrMsgCatalogIncompleteErr
	case errors.Is(err, domain.ErrRerollInProgress):
		return http.StatusConflict, ErrMsgRerollInProgressErr
	case errors.Is(err, domain.ErrImageGeneration):
		return http.StatusBadGateway, ErrMsgImageGenerationError
	case errors.Is(err, domain.ErrNoJobHandler):
		return http.StatusInternalServerError, ErrMsgNoJobHandlerError
	case errors.Is(err, domain.ErrMissingArtifact):
		return http.StatusInternalServerError, ErrMsgMissingArtifactErr
	case errors.Is(err, domain.ErrJobTargetKind):
		return http.StatusInternalServerError, ErrMsgJobTargetKindError
	case errors.Is(err, domain.ErrJobHandler):
		return http.StatusInternalServerError, ErrMsgJobHandlerError
	}

	// Default to generic message for system-level errors
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// userMessage returns the detail wrapped around an input error, which is
// written for clients, else fallback.
func userMessage(err error, fallback string) string {
	prefix := domain.ErrMsgInvalidInput + ": "
	if msg := err.Error(); strings.HasPrefix(msg, prefix) && len(msg) < 200 {
		return strings.TrimPrefix(msg, prefix)
	}
	return fallback
}

// respondServiceError logs a failed service call and writes the mapped response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
