package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"sessiondesk/internal/pkg/logger"
)

// Common error codes, matching the gin transport.
const (
	codeInvalidInput  = "INVALID_INPUT"
	codeNotFound      = "NOT_FOUND"
	codeConflict      = "CONFLICT"
	codeInvalidAction = "INVALID_ACTION"
	codeInternalError = "INTERNAL_ERROR"
)

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, statusCode int, message, code string) {
	writeJSON(w, statusCode, errorBody{Error: message, Code: code})
}

// decode reads the request body into v; an empty body is not an error
// (several endpoints treat it as an empty object).
func decode(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
