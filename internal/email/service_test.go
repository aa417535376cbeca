package email_test

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/keralaeconomicforum/forum/internal/config"
	"github.com/keralaeconomicforum/forum/internal/email"
	"github.com/keralaeconomicforum/forum/internal/email/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplates(t *testing.T) {
	svc, err := email.NewService(&config.Config{}, email.ProviderSendgrid)
	require.NoError(t, err)

	tmpl, ok := svc.Templates["reply"]
	require.True(t, ok, "reply template group should be embedded")
	assert.NotNil(t, tmpl.HTML)
	assert.NotNil(t, tmpl.Plaintext)
}

func TestReplyTemplateRendering(t *testing.T) {
	svc, err := email.NewService(&config.Config{}, email.ProviderSendgrid)
	require.NoError(t, err)

	data := mailer.ReplyData{
		Subject:  "Re: your membership",
		Body:     "Welcome aboard!",
		BodyHTML: template.HTML("Welcome aboard!<br>See you soon."),
		BaseURL:  "https://keralaeconomicforum.org",
	}

	var htmlBuf bytes.Buffer
	require.NoError(t, svc.Templates["reply"].HTML.Execute(&htmlBuf, data))
	rendered := htmlBuf.String()

	assert.Contains(t, rendered, "Re: your membership")
	assert.Contains(t, rendered, "Welcome aboard!<br>See you soon.")
	assert.Contains(t, rendered, "https://keralaeconomicforum.org")

	var textBuf bytes.Buffer
	require.NoError(t, svc.Templates["reply"].Plaintext.Execute(&textBuf, data))
	assert.True(t, strings.Contains(textBuf.String(), "Welcome aboard!"))
}
