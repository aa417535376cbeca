// internal/handler/forms.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/service"
)

// FormsHandler serves the public submission endpoints and the admin triage
// endpoints keyed by form type.
type FormsHandler struct {
	submissions *service.SubmissionService
}

func NewFormsHandler(submissions *service.SubmissionService) *FormsHandler {
	return &FormsHandler{submissions: submissions}
}

// SubmissionAccepted acknowledges a public form submission. Only the
// storage id goes back to the submitter, never the stored record.
type SubmissionAccepted struct {
	BaseResponse
	Message string `json:"message"`
	ID      string `json:"id"`
}

func respondAccepted(w http.ResponseWriter, message, id string) {
	respondWithJSON(w, http.StatusCreated, SubmissionAccepted{
		BaseResponse: BaseResponse{Success: true},
		Message:      message,
		ID:           id,
	})
}

func (h *FormsHandler) SubmitApply(w http.ResponseWriter, r *http.Request) {
	var input service.CreateApplyInput
	if !decodeJSON(w, r, &input) {
		return
	}
	submission, err := h.submissions.CreateApply(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondAccepted(w, "Application submitted successfully", submission.ID)
}

func (h *FormsHandler) SubmitRegister(w http.ResponseWriter, r *http.Request) {
	var input service.CreateRegisterInput
	if !decodeJSON(w, r, &input) {
		return
	}
	submission, err := h.submissions.CreateRegister(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondAccepted(w, "Registration submitted successfully", submission.ID)
}

func (h *FormsHandler) SubmitConsultation(w http.ResponseWriter, r *http.Request) {
	var input service.CreateConsultationInput
	if !decodeJSON(w, r, &input) {
		return
	}
	submission, err := h.submissions.CreateConsultation(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondAccepted(w, "Consultation request submitted successfully", submission.ID)
}

func (h *FormsHandler) SubmitAdvisory(w http.ResponseWriter, r *http.Request) {
	var input service.CreateAdvisoryInput
	if !decodeJSON(w, r, &input) {
		return
	}
	submission, err := h.submissions.CreateAdvisory(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondAccepted(w, "Advisory request submitted successfully", submission.ID)
}

func (h *FormsHandler) SubmitCampusInvite(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCampusInviteInput
	if !decodeJSON(w, r, &input) {
		return
	}
	submission, err := h.submissions.CreateCampusInvite(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondAccepted(w, "Campus invite request submitted successfully", submission.ID)
}

func (h *FormsHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var input service.CreateContactInput
	if !decodeJSON(w, r, &input) {
		return
	}
	submission, err := h.submissions.CreateContact(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondAccepted(w, "Message sent successfully", submission.ID)
}

// ListContacts serves the contact inbox with optional ?category filtering.
func (h *FormsHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.submissions.ListContacts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, contacts)
}

// formType resolves the {type} route parameter. Unknown types 404 rather
// than 400: the URL simply names a collection that does not exist.
func formType(w http.ResponseWriter, r *http.Request) (model.FormType, bool) {
	t := model.FormType(chi.URLParam(r, "type"))
	if !model.ValidFormType(t) {
		respondWithError(w, http.StatusNotFound, "Unknown form type")
		return "", false
	}
	return t, true
}

func (h *FormsHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	t, ok := formType(w, r)
	if !ok {
		return
	}
	submissions, err := h.submissions.List(r.Context(), t)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, submissions)
}

func (h *FormsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	t, ok := formType(w, r)
	if !ok {
		return
	}
	var input service.UpdateStatusInput
	if !decodeJSON(w, r, &input) {
		return
	}
	submission, err := h.submissions.UpdateStatus(r.Context(), t, chi.URLParam(r, "id"), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, submission)
}

func (h *FormsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, ok := formType(w, r)
	if !ok {
		return
	}
	if err := h.submissions.Delete(r.Context(), t, chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Success: true})
}
