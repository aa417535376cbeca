// internal/respond/respond.go
package respond

import (
	"encoding/json"
	"net/http"
)

// Base is embedded in success envelopes so mutating endpoints all report
// {"success": true} the same way.
type Base struct {
	Success bool `json:"success"`
}

// ErrorBody is the error envelope. Handlers and middleware both use it, so
// a 401 from the auth middleware looks the same as a 400 from a handler.
type ErrorBody struct {
	Success bool      `json:"success"`
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

// JSON writes payload as the response body with the given status code.
func JSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// Error writes the shared error envelope.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, ErrorBody{Error: message})
}
