// internal/handler/reply.go
package handler

import (
	"net/http"

	"github.com/keralaeconomicforum/forum/internal/middleware"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/service"
)

type ReplyHandler struct {
	replies *service.ReplyService
}

func NewReplyHandler(replies *service.ReplyService) *ReplyHandler {
	return &ReplyHandler{replies: replies}
}

// SendReplyResponse carries the audit record plus the provider's message id
// so the admin panel can cross-reference delivery in the provider console.
type SendReplyResponse struct {
	BaseResponse
	Reply   *model.EmailReply `json:"reply"`
	EmailID string            `json:"emailId"`
}

// Send delivers an admin reply to a submitter and records it. The acting
// admin comes from the authenticated identity, never from the payload.
func (h *ReplyHandler) Send(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var input service.SendReplyInput
	if !decodeJSON(w, r, &input) {
		return
	}
	reply, emailID, err := h.replies.Send(r.Context(), input, identity.UID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, SendReplyResponse{
		BaseResponse: BaseResponse{Success: true},
		Reply:        reply,
		EmailID:      emailID,
	})
}

// History lists the reply audit trail for ?submissionId and ?submissionType.
func (h *ReplyHandler) History(w http.ResponseWriter, r *http.Request) {
	submissionID := r.URL.Query().Get("submissionId")
	submissionType := model.FormType(r.URL.Query().Get("submissionType"))

	replies, err := h.replies.History(r.Context(), submissionID, submissionType)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, replies)
}
