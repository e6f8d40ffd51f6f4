package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

const defaultSMTPTimeout = 10 * time.Second

// SMTPConfig holds the configuration for the SMTP relay sender.
type SMTPConfig struct {
	// Host and Port locate the mail relay.
	Host string
	Port int
	// Username and Password authenticate against the relay. If Username is
	// empty, the sender connects unauthenticated (local relays, test servers).
	Username string
	Password string
	// SenderAddress is the "From" email address.
	SenderAddress string
	// SenderName is the display name for the sender.
	SenderName string
	// Timeout bounds the whole delivery attempt: dial, handshake, and
	// transmission. Zero means 10s.
	Timeout time.Duration
}

var _ Sender = (*SMTPSender)(nil)

// SMTPSender implements Sender over a standard SMTP relay.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender validates the relay configuration and returns an SMTPSender.
// Configuration errors are reported here, at startup, never at first send.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp: relay host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("smtp: invalid relay port %d", cfg.Port)
	}
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("smtp: sender address is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSMTPTimeout
	}
	return &SMTPSender{cfg: cfg}, nil
}

// Name identifies the provider in logs and delivery results.
func (s *SMTPSender) Name() string { return "smtp" }

// Send transmits the email through the configured relay. The connection
// carries a deadline so a stalled relay surfaces as an error instead of
// hanging the caller.
func (s *SMTPSender) Send(ctx context.Context, msg Email) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	dialer := &net.Dialer{Timeout: s.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp: failed to connect to %s: %w", addr, err)
	}
	if err := conn.SetDeadline(time.Now().Add(s.cfg.Timeout)); err != nil {
		conn.Close()
		return fmt.Errorf("smtp: failed to set deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp: handshake with %s failed: %w", addr, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: s.cfg.Host}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("smtp: failed to start TLS: %w", err)
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp: authentication failed: %w", err)
		}
	}

	if err := client.Mail(s.cfg.SenderAddress); err != nil {
		return fmt.Errorf("smtp: relay rejected sender %s: %w", s.cfg.SenderAddress, err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp: relay rejected recipient %s: %w", msg.To, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp: failed to start data transmission: %w", err)
	}
	if _, err := w.Write(s.buildMessage(msg)); err != nil {
		w.Close()
		return fmt.Errorf("smtp: failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp: relay did not accept message: %w", err)
	}

	return client.Quit()
}

// buildMessage assembles the RFC 5322 wire form of the email.
func (s *SMTPSender) buildMessage(msg Email) []byte {
	from := s.cfg.SenderAddress
	if s.cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.SenderName, s.cfg.SenderAddress)
	}

	contentType := "text/plain; charset=UTF-8"
	body := msg.TextBody
	if msg.HTMLBody != "" {
		contentType = "text/html; charset=UTF-8"
		body = msg.HTMLBody
	}

	headers := strings.Join([]string{
		"From: " + from,
		"To: " + msg.To,
		"Subject: " + msg.Subject,
		"MIME-Version: 1.0",
		"Content-Type: " + contentType,
	}, "\r\n")

	return []byte(headers + "\r\n\r\n" + body + "\r\n")
}
