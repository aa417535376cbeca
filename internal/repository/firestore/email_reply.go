// internal/repository/firestore/email_reply.go
package firestore

import (
	"context"
	"fmt"

	cloudfs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/keralaeconomicforum/forum/internal/model"
)

type EmailReplyRepository struct {
	client *cloudfs.Client
}

func NewEmailReplyRepository(client *cloudfs.Client) *EmailReplyRepository {
	return &EmailReplyRepository{client: client}
}

func decodeEmailReply(doc *cloudfs.DocumentSnapshot) (*model.EmailReply, error) {
	var reply model.EmailReply
	if err := doc.DataTo(&reply); err != nil {
		return nil, fmt.Errorf("decoding email reply document: %w", err)
	}
	reply.ID = doc.Ref.ID
	return &reply, nil
}

func (r *EmailReplyRepository) Create(ctx context.Context, reply *model.EmailReply) error {
	if reply.ID == "" {
		reply.ID = uuid.NewString()
	}

	fields := map[string]any{
		"submissionId":   reply.SubmissionID,
		"submissionType": string(reply.SubmissionType),
		"recipientEmail": reply.RecipientEmail,
		"subject":        reply.Subject,
		"body":           reply.Body,
		"sentBy":         reply.SentBy,
		"sentAt":         cloudfs.ServerTimestamp,
	}

	docRef := r.client.Collection(colEmailReplies).Doc(reply.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create email reply: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading email reply: %w", err)
	}
	stored, err := decodeEmailReply(doc)
	if err != nil {
		return err
	}
	*reply = *stored
	return nil
}

func (r *EmailReplyRepository) FindBySubmission(ctx context.Context, submissionID string, submissionType model.FormType) ([]model.EmailReply, error) {
	docs, err := r.client.Collection(colEmailReplies).
		Where("submissionId", "==", submissionID).
		Where("submissionType", "==", string(submissionType)).
		OrderBy("sentAt", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find email replies: %w", err)
	}

	replies := make([]model.EmailReply, 0, len(docs))
	for _, doc := range docs {
		reply, err := decodeEmailReply(doc)
		if err != nil {
			return nil, err
		}
		replies = append(replies, *reply)
	}
	return replies, nil
}
