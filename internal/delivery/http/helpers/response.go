package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-upload error response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse with the given status code and message.
// The message must be safe to show to a client.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}
