// internal/service/reply.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/keralaeconomicforum/forum/internal/email"
	"github.com/keralaeconomicforum/forum/internal/email/mailer"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
)

// ReplyService sends admin replies to form submitters and keeps the audit
// trail. The audit record is written only after the provider accepts the
// message; a failed send persists nothing.
type ReplyService struct {
	replies  repository.EmailReplyRepository
	sender   email.Sender
	baseURL  string
	validate *validator.Validate
}

func NewReplyService(replies repository.EmailReplyRepository, sender email.Sender, baseURL string) *ReplyService {
	return &ReplyService{
		replies:  replies,
		sender:   sender,
		baseURL:  baseURL,
		validate: newValidator(),
	}
}

type SendReplyInput struct {
	SubmissionID   string         `json:"submissionId" validate:"required"`
	SubmissionType model.FormType `json:"submissionType" validate:"required,oneof=apply register consultation advisory campus-invite contact"`
	RecipientEmail string         `json:"recipientEmail" validate:"required,email"`
	Subject        string         `json:"subject" validate:"required"`
	Body           string         `json:"body" validate:"required"`
}

// Send delivers the reply and records it. sentBy is the acting admin's user
// id. The returned reply includes the storage id and sent timestamp; the
// string is the provider's message id, empty when the provider has none.
func (s *ReplyService) Send(ctx context.Context, input SendReplyInput, sentBy string) (*model.EmailReply, string, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, "", newValidationError(err)
	}

	emailID, err := mailer.SendReply(ctx, s.sender, s.baseURL, input.RecipientEmail, input.Subject, input.Body)
	if err != nil {
		return nil, "", fmt.Errorf("sending reply to %s: %w", input.RecipientEmail, err)
	}

	reply := &model.EmailReply{
		SubmissionID:   input.SubmissionID,
		SubmissionType: input.SubmissionType,
		RecipientEmail: input.RecipientEmail,
		Subject:        input.Subject,
		Body:           input.Body,
		SentBy:         sentBy,
	}
	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, "", fmt.Errorf("recording reply: %w", err)
	}
	return reply, emailID, nil
}

// History returns the audit trail for one submission, newest first.
func (s *ReplyService) History(ctx context.Context, submissionID string, submissionType model.FormType) ([]model.EmailReply, error) {
	if submissionID == "" {
		return nil, &ValidationError{Details: []string{"submissionId is required"}}
	}
	if !model.ValidFormType(submissionType) {
		return nil, &ValidationError{Details: []string{"submissionType must be one of: apply, register, consultation, advisory, campus-invite, contact"}}
	}
	return s.replies.FindBySubmission(ctx, submissionID, submissionType)
}
