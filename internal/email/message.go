package email

import (
	"fmt"
	"strings"
)

// Kind identifies which notification a Message represents. It selects the
// composition strategy that turns the message into deliverable content.
type Kind string

const (
	// KindRegistrationConfirmation asks a new user to confirm their account.
	KindRegistrationConfirmation Kind = "registration-confirmation"
	// KindPasswordReset carries a password reset link.
	KindPasswordReset Kind = "password-reset"
)

// Kinds returns all declared notification kinds.
func Kinds() []Kind {
	return []Kind{KindRegistrationConfirmation, KindPasswordReset}
}

func (k Kind) valid() bool {
	switch k {
	case KindRegistrationConfirmation, KindPasswordReset:
		return true
	}
	return false
}

// Message describes one outgoing notification. It is immutable once
// constructed: fields are unexported and the context map is copied both on
// construction and on read.
type Message struct {
	recipient string
	kind      Kind
	tmplCtx   map[string]any
}

// NewMessage validates the recipient address and kind and returns a Message.
// Context values may be strings or numbers; they are formatted on substitution.
// A nil context is treated as empty.
func NewMessage(recipient string, kind Kind, tmplCtx map[string]any) (Message, error) {
	if err := validateRecipient(recipient); err != nil {
		return Message{}, err
	}
	if !kind.valid() {
		return Message{}, &ValidationError{Field: "kind", Reason: fmt.Sprintf("unrecognized kind %q", string(kind))}
	}

	ctxCopy := make(map[string]any, len(tmplCtx))
	for k, v := range tmplCtx {
		ctxCopy[k] = v
	}

	return Message{recipient: recipient, kind: kind, tmplCtx: ctxCopy}, nil
}

func validateRecipient(recipient string) error {
	if recipient == "" {
		return &ValidationError{Field: "recipient", Reason: "must not be empty"}
	}
	local, domain, found := strings.Cut(recipient, "@")
	if !found || local == "" || domain == "" {
		return &ValidationError{Field: "recipient", Reason: fmt.Sprintf("%q is not a valid email address", recipient)}
	}
	return nil
}

// Recipient returns the validated recipient address.
func (m Message) Recipient() string { return m.recipient }

// Kind returns the notification kind.
func (m Message) Kind() Kind { return m.kind }

// Context returns a copy of the template context.
func (m Message) Context() map[string]any {
	out := make(map[string]any, len(m.tmplCtx))
	for k, v := range m.tmplCtx {
		out[k] = v
	}
	return out
}

// contextValue returns the context value for key formatted as a string.
func (m Message) contextValue(key string) (string, bool) {
	v, ok := m.tmplCtx[key]
	if !ok {
		return "", false
	}
	return fmt.Sprint(v), true
}
