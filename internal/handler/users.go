// internal/handler/users.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/keralaeconomicforum/forum/internal/service"
)

type UsersHandler struct {
	users *service.UserService
}

func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

type UpdateRoleInput struct {
	Role string `json:"role"`
}

func (h *UsersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var input UpdateRoleInput
	if !decodeJSON(w, r, &input) {
		return
	}
	user, err := h.users.UpdateRole(r.Context(), chi.URLParam(r, "id"), input.Role)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}
