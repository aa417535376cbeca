package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/email"
	"github.com/keralaeconomicforum/forum/internal/mocks"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func validReplyInput() service.SendReplyInput {
	return service.SendReplyInput{
		SubmissionID:   "sub-1",
		SubmissionType: model.FormRegister,
		RecipientEmail: "anita@example.com",
		Subject:        "Your membership application",
		Body:           "Thanks for applying. We will be in touch.",
	}
}

func TestSendReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("records the reply after the provider accepts it", func(t *testing.T) {
		sender := mocks.NewMockSender(ctrl)
		replyRepo := mocks.NewMockEmailReplyRepository(ctrl)
		svc := service.NewReplyService(replyRepo, sender, "https://keralaeconomicforum.org")

		gomock.InOrder(
			sender.EXPECT().
				SendEmail(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, data email.EmailData) (string, error) {
					assert.Equal(t, "anita@example.com", data.To)
					assert.Equal(t, "reply", data.TemplateName)
					return "msg-123", nil
				}),
			replyRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, reply *model.EmailReply) error {
					reply.ID = "reply-1"
					return nil
				}),
		)

		reply, emailID, err := svc.Send(context.Background(), validReplyInput(), "admin-uid")
		assert.NoError(t, err)
		assert.Equal(t, "reply-1", reply.ID)
		assert.Equal(t, "admin-uid", reply.SentBy)
		assert.Equal(t, model.FormRegister, reply.SubmissionType)
		assert.Equal(t, "msg-123", emailID)
	})

	t.Run("a failed send records nothing", func(t *testing.T) {
		sender := mocks.NewMockSender(ctrl)
		replyRepo := mocks.NewMockEmailReplyRepository(ctrl)
		svc := service.NewReplyService(replyRepo, sender, "https://keralaeconomicforum.org")

		sender.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return("", domain.ErrEmailSendFailed)

		_, _, err := svc.Send(context.Background(), validReplyInput(), "admin-uid")
		assert.True(t, errors.Is(err, domain.ErrEmailSendFailed))
	})

	t.Run("invalid input never reaches the provider", func(t *testing.T) {
		sender := mocks.NewMockSender(ctrl)
		replyRepo := mocks.NewMockEmailReplyRepository(ctrl)
		svc := service.NewReplyService(replyRepo, sender, "https://keralaeconomicforum.org")

		input := validReplyInput()
		input.RecipientEmail = "not-an-email"
		input.SubmissionType = "newsletter"

		_, _, err := svc.Send(context.Background(), input, "admin-uid")

		var verr *service.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Details, 2)
	})
}

func TestReplyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the audit trail", func(t *testing.T) {
		replyRepo := mocks.NewMockEmailReplyRepository(ctrl)
		svc := service.NewReplyService(replyRepo, mocks.NewMockSender(ctrl), "https://keralaeconomicforum.org")

		replyRepo.EXPECT().
			FindBySubmission(gomock.Any(), "sub-1", model.FormContact).
			Return([]model.EmailReply{{ID: "reply-1"}}, nil)

		replies, err := svc.History(context.Background(), "sub-1", model.FormContact)
		assert.NoError(t, err)
		assert.Len(t, replies, 1)
	})

	t.Run("requires a submission id and a known type", func(t *testing.T) {
		replyRepo := mocks.NewMockEmailReplyRepository(ctrl)
		svc := service.NewReplyService(replyRepo, mocks.NewMockSender(ctrl), "https://keralaeconomicforum.org")

		_, err := svc.History(context.Background(), "", model.FormContact)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))

		_, err = svc.History(context.Background(), "sub-1", "newsletter")
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}
