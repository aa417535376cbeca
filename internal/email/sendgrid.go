// internal/email/sendgrid.go
package email

import (
	"context"
	"fmt"

	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWithSendgrid sends an email using the Sendgrid API
func (s *Service) sendWithSendgrid(ctx context.Context, data EmailData, htmlContent, textContent string) (string, error) {
	if s.config.Sendgrid.APIKey == "" {
		return "", fmt.Errorf("%w: set SENDGRID_API_KEY", domain.ErrEmailNotConfigured)
	}

	from := mail.NewEmail(data.FromName, data.From)
	to := mail.NewEmail("", data.To)
	message := mail.NewSingleEmail(from, data.Subject, to, textContent, htmlContent)

	response, err := s.sendgridClient.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEmailSendFailed, err)
	}

	if response.StatusCode != 202 {
		return "", fmt.Errorf("%w: unexpected Sendgrid status code %d, body: %s",
			domain.ErrEmailSendFailed, response.StatusCode, response.Body)
	}

	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}
