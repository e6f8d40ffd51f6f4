package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendConfig holds the configuration for the Resend sender.
type ResendConfig struct {
	APIKey string
	// SenderAddress is the email address emails are sent from.
	SenderAddress string
	// SenderName is the display name for the sender.
	SenderName string
}

var _ Sender = (*ResendSender)(nil)

// ResendSender implements Sender using the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender validates the configuration and returns a ResendSender.
func NewResendSender(cfg ResendConfig) (*ResendSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("resend: API key is required")
	}
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("resend: sender address is required")
	}

	from := cfg.SenderAddress
	if cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.SenderAddress)
	}

	return &ResendSender{
		client: resend.NewClient(cfg.APIKey),
		from:   from,
	}, nil
}

// Name identifies the provider in logs and delivery results.
func (s *ResendSender) Name() string { return "resend" }

// Send sends an email using the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg Email) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
		Text:    msg.TextBody,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}
