package email

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunConfig holds the configuration for the Mailgun sender.
type MailgunConfig struct {
	Domain string
	APIKey string
	// SenderAddress is the email address emails are sent from.
	SenderAddress string
	// SenderName is the display name for the sender.
	SenderName string
}

var _ Sender = (*MailgunSender)(nil)

// MailgunSender implements Sender using the Mailgun API.
type MailgunSender struct {
	client *mailgun.MailgunImpl
	from   string
}

// NewMailgunSender validates the configuration and returns a MailgunSender.
func NewMailgunSender(cfg MailgunConfig) (*MailgunSender, error) {
	if cfg.Domain == "" {
		return nil, fmt.Errorf("mailgun: domain is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mailgun: API key is required")
	}
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("mailgun: sender address is required")
	}

	from := cfg.SenderAddress
	if cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.SenderAddress)
	}

	return &MailgunSender{
		client: mailgun.NewMailgun(cfg.Domain, cfg.APIKey),
		from:   from,
	}, nil
}

// Name identifies the provider in logs and delivery results.
func (s *MailgunSender) Name() string { return "mailgun" }

// Send sends an email using the Mailgun API.
func (s *MailgunSender) Send(ctx context.Context, msg Email) error {
	m := s.client.NewMessage(s.from, msg.Subject, msg.TextBody, msg.To)
	if msg.HTMLBody != "" {
		m.SetHtml(msg.HTMLBody)
	}

	if _, _, err := s.client.Send(ctx, m); err != nil {
		return fmt.Errorf("mailgun: failed to send email: %w", err)
	}

	return nil
}
