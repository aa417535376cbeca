// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/respond"
	"github.com/keralaeconomicforum/forum/internal/service"
)

// BaseResponse and ErrorResponse are the shared envelopes; the middleware
// package writes the same shapes.
type BaseResponse = respond.Base

type ErrorResponse = respond.ErrorBody

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respond.Error(w, code, message)
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	respond.JSON(w, code, payload)
}

// respondWithServiceError maps service-layer errors onto HTTP statuses.
// Unrecognized errors are logged with the request id and surface as a
// generic 500, never leaking internals to the client.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: &verr.Details,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSubmissionNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidFormType):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrAuthNotConfigured):
		respondWithError(w, http.StatusServiceUnavailable, "Authentication is not configured")
	case errors.Is(err, domain.ErrEmailNotConfigured), errors.Is(err, domain.ErrEmailSendFailed):
		slog.ErrorContext(r.Context(), "Email delivery error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusBadGateway, "Failed to send email")
	default:
		slog.ErrorContext(r.Context(), "Unhandled service error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON parses the request body into dst, rejecting malformed payloads.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	defer r.Body.Close()
	return true
}
