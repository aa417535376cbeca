package mailer_test

import (
	"context"
	"testing"

	"github.com/keralaeconomicforum/forum/internal/email"
	"github.com/keralaeconomicforum/forum/internal/email/mailer"
	"github.com/keralaeconomicforum/forum/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSendReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("escapes the body for the HTML variant", func(t *testing.T) {
		sender := mocks.NewMockSender(ctrl)

		var captured email.EmailData
		sender.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data email.EmailData) (string, error) {
				captured = data
				return "msg-1", nil
			})

		id, err := mailer.SendReply(context.Background(), sender,
			"https://keralaeconomicforum.org",
			"anita@example.com",
			"Re: your question",
			"Use <b>bold</b> sparingly.\nSecond line.")

		require.NoError(t, err)
		assert.Equal(t, "msg-1", id)
		assert.Equal(t, "anita@example.com", captured.To)
		assert.Equal(t, "reply", captured.TemplateName)

		data, ok := captured.TemplateData.(mailer.ReplyData)
		require.True(t, ok)
		assert.Contains(t, string(data.BodyHTML), "&lt;b&gt;bold&lt;/b&gt;")
		assert.Contains(t, string(data.BodyHTML), "<br>")
		assert.Equal(t, "Use <b>bold</b> sparingly.\nSecond line.", data.Body)
	})
}
