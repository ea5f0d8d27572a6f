// Package mail delivers account confirmation messages.
package mail

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

const confirmationSubject = "Confirm your Form Console account"

type Sender interface {
	SendConfirmation(ctx context.Context, to, link string) error
}

type ResendSender struct {
	client *resend.Client
	from   string
	log    *zap.Logger
}

func NewResendSender(apiKey, from string, log *zap.Logger) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey), from: from, log: log}
}

func (s *ResendSender) SendConfirmation(ctx context.Context, to, link string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: confirmationSubject,
		Html:    confirmationBody(link),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	s.log.Info("confirmation mail sent", zap.String("to", to), zap.String("id", sent.Id))
	return nil
}

// LogSender writes the confirmation link to the log instead of mailing it.
// It is used when no Resend key is configured.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendConfirmation(_ context.Context, to, link string) error {
	s.log.Info("confirmation link", zap.String("to", to), zap.String("link", link))
	return nil
}

func confirmationBody(link string) string {
	escaped := html.EscapeString(link)
	return fmt.Sprintf(
		`<p>Welcome to Form Console.</p><p><a href="%s">Confirm your email address</a> to finish signing up.</p><p>%s</p>`,
		escaped, escaped,
	)
}
