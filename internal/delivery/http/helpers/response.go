package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in the envelope's error object.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeNotFound      = "not_found"
	ErrCodeConflict      = "conflict"
	ErrCodeUnavailable   = "unavailable"
	ErrCodeInternalError = "internal_error"
)

// APIError is the error object in the response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the envelope every JSON endpoint answers with. Exactly one
// of Data and Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONSuccess writes statusCode and the envelope with data set.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError writes statusCode and the envelope with the error object set.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}
