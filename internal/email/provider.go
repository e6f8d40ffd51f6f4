package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/courierd/courierd/internal/config"
	"github.com/courierd/courierd/internal/logger"
)

// NewSenderFromConfig builds the delivery provider selected by
// cfg.Provider. Provider construction validates its own credentials, so a
// misconfigured provider fails here at startup rather than at first send.
func NewSenderFromConfig(ctx context.Context, cfg config.MailConfig, log *logger.Logger) (Sender, error) {
	switch strings.ToLower(cfg.Provider) {
	case "smtp", "":
		return NewSMTPSender(SMTPConfig{
			Host:          cfg.SMTP.Host,
			Port:          cfg.SMTP.Port,
			Username:      cfg.SMTP.Username,
			Password:      cfg.SMTP.Password,
			SenderAddress: cfg.Sender.Address,
			SenderName:    cfg.Sender.Name,
			Timeout:       cfg.Timeout,
		})
	case "gmail":
		return NewGmailSender(ctx, GmailConfig{
			CredentialsJSON: cfg.Gmail.CredentialsJSON,
			ClientID:        cfg.Gmail.ClientID,
			ClientSecret:    cfg.Gmail.ClientSecret,
			RefreshToken:    cfg.Gmail.RefreshToken,
			SenderAddress:   cfg.Sender.Address,
			SenderName:      cfg.Sender.Name,
		})
	case "resend":
		return NewResendSender(ResendConfig{
			APIKey:        cfg.Resend.APIKey,
			SenderAddress: cfg.Sender.Address,
			SenderName:    cfg.Sender.Name,
		})
	case "mailgun":
		return NewMailgunSender(MailgunConfig{
			Domain:        cfg.Mailgun.Domain,
			APIKey:        cfg.Mailgun.APIKey,
			SenderAddress: cfg.Sender.Address,
			SenderName:    cfg.Sender.Name,
		})
	case "log":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("email: unknown provider %q", cfg.Provider)
	}
}
