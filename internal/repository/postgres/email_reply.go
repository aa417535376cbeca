// internal/repository/postgres/email_reply.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keralaeconomicforum/forum/internal/model"
	"gorm.io/gorm"
)

type EmailReplyRepository struct {
	db *gorm.DB
}

func NewEmailReplyRepository(db *gorm.DB) *EmailReplyRepository {
	return &EmailReplyRepository{db: db}
}

func (r *EmailReplyRepository) Create(ctx context.Context, reply *model.EmailReply) error {
	if reply.ID == "" {
		reply.ID = uuid.NewString()
	}
	if reply.SentAt.IsZero() {
		reply.SentAt = time.Now().UTC()
	}
	if result := r.db.WithContext(ctx).Create(reply); result.Error != nil {
		return fmt.Errorf("failed to create email reply: %w", result.Error)
	}
	return nil
}

func (r *EmailReplyRepository) FindBySubmission(ctx context.Context, submissionID string, submissionType model.FormType) ([]model.EmailReply, error) {
	var replies []model.EmailReply
	result := r.db.WithContext(ctx).
		Where("submission_id = ? AND submission_type = ?", submissionID, submissionType).
		Order("sent_at desc").
		Find(&replies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find email replies: %w", result.Error)
	}
	return replies, nil
}
