package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GatchaLife_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CallbackRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Workflow callback"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetIDParam parses a positive integer path parameter. If the parameter is
// malformed it writes an error response and returns false.
func GetIDParam(r *http.Request, w http.ResponseWriter, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid path parameter", "param", name, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return id, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
//
// Example usage:
//
//	rarity := GetOptionalQueryParam(r, "rarity", "")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetBoolQueryParam parses an optional boolean query parameter. If the value
// is malformed it writes an error response and returns false for ok.
func GetBoolQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (value bool, ok bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return false, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidBoolParam, paramName))
		return false, false
	}
	return value, true
}
