package email

import "fmt"

// ValidationError reports malformed Message construction input. It is
// returned by NewMessage, never at send time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid message: %s: %s", e.Field, e.Reason)
}

// UnsupportedKindError reports a notification kind with no registered
// composer. It indicates a caller/registry mismatch and is fatal to the call.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("no composer registered for kind %q", string(e.Kind))
}

// TemplateError reports a required template context key that was missing
// during composition. Key names the missing key.
type TemplateError struct {
	Kind Kind
	Key  string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("compose %q: missing required context key %q", string(e.Kind), e.Key)
}
