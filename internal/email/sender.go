package email

import (
	"context"

	"github.com/google/uuid"
)

// Email is a fully-rendered message ready for transport. Exactly one of
// HTMLBody and TextBody is set, per the content's format.
type Email struct {
	To       string // recipient email address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text body
}

// Sender is the interface that all delivery providers must implement.
// This abstraction allows swapping delivery transports (SMTP, Gmail, Resend,
// Mailgun, etc.) without changing business logic. A transport-level failure
// (connection refused, bad credentials at the relay, timeout) is returned as
// an error from Send; missing configuration is rejected by the provider's
// constructor instead, so it surfaces at startup rather than at first send.
type Sender interface {
	// Name identifies the provider in logs and delivery results.
	Name() string
	// Send transmits the email to its recipient.
	Send(ctx context.Context, msg Email) error
}

// Status is the outcome of one delivery attempt.
type Status string

const (
	// StatusSent means the transport accepted the message.
	StatusSent Status = "sent"
	// StatusFailed means the transport reported a failure.
	StatusFailed Status = "failed"
)

// DeliveryResult reports the outcome of a single delivery attempt. Transport
// failures are carried here as data, not raised as errors, so the triggering
// business operation can complete independently of email deliverability.
type DeliveryResult struct {
	// AttemptID correlates this attempt across logs.
	AttemptID uuid.UUID
	// Provider is the name of the sender that handled the attempt.
	Provider string
	// Status is sent or failed.
	Status Status
	// Error is the human-readable cause, set only when Status is failed.
	Error string
}

// Sent reports whether the attempt succeeded.
func (r DeliveryResult) Sent() bool { return r.Status == StatusSent }

// emailFromContent maps rendered content onto the transport shape.
func emailFromContent(content Content, recipient string) Email {
	msg := Email{To: recipient, Subject: content.Subject}
	if content.Format == FormatHTML {
		msg.HTMLBody = content.Body
	} else {
		msg.TextBody = content.Body
	}
	return msg
}
