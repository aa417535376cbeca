// internal/email/mailer/reply.go
package mailer

import (
	"context"
	"html"
	"html/template"
	"strings"

	"github.com/keralaeconomicforum/forum/internal/email"
)

// ReplyData feeds the reply email template pair.
type ReplyData struct {
	Subject  string
	Body     string
	BodyHTML template.HTML
	BaseURL  string
}

// SendReply sends an admin's reply to a form submitter using the branded
// reply template. The plain-text body is HTML-escaped and newline-broken for
// the HTML variant, never interpreted as markup.
func SendReply(ctx context.Context, sender email.Sender, baseURL, to, subject, body string) (string, error) {
	escaped := html.EscapeString(body)
	bodyHTML := template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))

	return sender.SendEmail(ctx, email.EmailData{
		To:           to,
		Subject:      subject,
		TemplateName: "reply",
		TemplateData: ReplyData{
			Subject:  subject,
			Body:     body,
			BodyHTML: bodyHTML,
			BaseURL:  baseURL,
		},
	})
}
