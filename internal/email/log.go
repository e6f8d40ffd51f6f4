package email

import (
	"context"

	"github.com/courierd/courierd/internal/logger"
)

var _ Sender = (*LogSender)(nil)

// LogSender logs emails instead of sending them. Useful for development and
// for running the application without a configured mail relay.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender creates a new log-based email sender.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log.WithComponent("email_log")}
}

// Name identifies the provider in logs and delivery results.
func (s *LogSender) Name() string { return "log" }

// Send logs the email details instead of transmitting them.
func (s *LogSender) Send(ctx context.Context, msg Email) error {
	body := msg.TextBody
	if body == "" {
		body = msg.HTMLBody
	}
	s.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("body_bytes", len(body)).
		Msg("email not sent (log provider)")
	return nil
}
