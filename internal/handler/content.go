// internal/handler/content.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/service"
)

// ContentHandler serves the catalog endpoints. Public routes list active
// records only; admin routes see and manage everything.
type ContentHandler struct {
	content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.content.ListResources(r.Context(), false)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resources)
}

func (h *ContentHandler) AdminListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.content.ListResources(r.Context(), true)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resources)
}

func (h *ContentHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	resource, err := h.content.GetResource(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resource)
}

func (h *ContentHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var input service.CreateResourceInput
	if !decodeJSON(w, r, &input) {
		return
	}
	resource, err := h.content.CreateResource(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, resource)
}

func (h *ContentHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	var patch model.ResourcePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	resource, err := h.content.UpdateResource(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resource)
}

func (h *ContentHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteResource(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Success: true})
}

func (h *ContentHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.content.ListPrograms(r.Context(), false)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, programs)
}

func (h *ContentHandler) AdminListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.content.ListPrograms(r.Context(), true)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, programs)
}

func (h *ContentHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	program, err := h.content.GetProgram(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, program)
}

func (h *ContentHandler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProgramInput
	if !decodeJSON(w, r, &input) {
		return
	}
	program, err := h.content.CreateProgram(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, program)
}

func (h *ContentHandler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	var patch model.ProgramPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	program, err := h.content.UpdateProgram(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, program)
}

func (h *ContentHandler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteProgram(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Success: true})
}

func (h *ContentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.content.ListEvents(r.Context(), false)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

func (h *ContentHandler) AdminListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.content.ListEvents(r.Context(), true)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

func (h *ContentHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.content.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, event)
}

func (h *ContentHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input service.CreateEventInput
	if !decodeJSON(w, r, &input) {
		return
	}
	event, err := h.content.CreateEvent(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, event)
}

func (h *ContentHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch model.EventPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	event, err := h.content.UpdateEvent(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, event)
}

func (h *ContentHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Success: true})
}

func (h *ContentHandler) ListMembershipPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.content.ListMembershipPlans(r.Context(), false)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plans)
}

func (h *ContentHandler) AdminListMembershipPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.content.ListMembershipPlans(r.Context(), true)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plans)
}

func (h *ContentHandler) GetMembershipPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.content.GetMembershipPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

func (h *ContentHandler) CreateMembershipPlan(w http.ResponseWriter, r *http.Request) {
	var input service.CreateMembershipPlanInput
	if !decodeJSON(w, r, &input) {
		return
	}
	plan, err := h.content.CreateMembershipPlan(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, plan)
}

func (h *ContentHandler) UpdateMembershipPlan(w http.ResponseWriter, r *http.Request) {
	var patch model.MembershipPlanPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	plan, err := h.content.UpdateMembershipPlan(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

func (h *ContentHandler) DeleteMembershipPlan(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteMembershipPlan(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Success: true})
}
