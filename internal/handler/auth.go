// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/keralaeconomicforum/forum/internal/auth"
	"github.com/keralaeconomicforum/forum/internal/middleware"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/service"
)

type AuthHandler struct {
	verifier auth.Verifier
	users    *service.UserService
}

func NewAuthHandler(verifier auth.Verifier, users *service.UserService) *AuthHandler {
	return &AuthHandler{verifier: verifier, users: users}
}

type SyncResponse struct {
	BaseResponse
	User *model.User `json:"user"`
}

// Sync mirrors the verified caller into storage. It runs behind the
// authentication middleware, so the identity is always present here.
func (h *AuthHandler) Sync(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := h.users.Sync(r.Context(), identity)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SyncResponse{BaseResponse: BaseResponse{Success: true}, User: user})
}

type CheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// Check answers whether the caller is an admin. It never rejects: a missing,
// invalid or unverifiable token simply reports isAdmin false, so the public
// site can probe without error handling.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		respondWithJSON(w, http.StatusOK, CheckResponse{IsAdmin: false})
		return
	}

	identity, err := h.verifier.Verify(r.Context(), token)
	if err != nil {
		respondWithJSON(w, http.StatusOK, CheckResponse{IsAdmin: false})
		return
	}

	isAdmin, err := h.users.IsAdmin(r.Context(), identity.UID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CheckResponse{IsAdmin: isAdmin})
}
