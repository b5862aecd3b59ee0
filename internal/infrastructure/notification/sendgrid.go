// Package notification sends transactional email to back-office staff.
package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailSender delivers a single email to one recipient
type EmailSender interface {
	Send(ctx context.Context, to, subject, plainText, htmlContent string) error
}

// SendGridSender delivers email through the SendGrid API
type SendGridSender struct {
	apiKey    string
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// NewSendGridSender creates a new SendGrid-backed sender
func NewSendGridSender(apiKey, fromEmail, fromName string, logger *zap.Logger) *SendGridSender {
	return &SendGridSender{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger.Named("sendgrid"),
	}
}

// Send delivers one email. SendGrid treats any 2xx/3xx as accepted.
func (s *SendGridSender) Send(ctx context.Context, to, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	s.logger.Debug("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// NoopSender discards email. Used when email delivery is disabled.
type NoopSender struct {
	logger *zap.Logger
}

// NewNoopSender creates a sender that logs instead of delivering
func NewNoopSender(logger *zap.Logger) *NoopSender {
	return &NoopSender{logger: logger.Named("email-noop")}
}

// Send logs the email instead of delivering it
func (s *NoopSender) Send(ctx context.Context, to, subject, plainText, htmlContent string) error {
	s.logger.Info("email delivery disabled, dropping message",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

var (
	_ EmailSender = (*SendGridSender)(nil)
	_ EmailSender = (*NoopSender)(nil)
)
