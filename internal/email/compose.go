package email

import "sort"

// Format tags how a rendered body should be interpreted by the transport.
type Format string

const (
	// FormatPlain marks a text/plain body.
	FormatPlain Format = "plain"
	// FormatHTML marks a text/html body.
	FormatHTML Format = "html"
)

// Content is the rendered form of a Message: a subject and body ready for
// transport. It is produced by a Composer and consumed once by a Sender.
type Content struct {
	Subject string
	Body    string
	Format  Format
}

// Composer renders a Message into final transport content. Implementations
// must be pure functions of their input: no I/O, no side effects, and the
// same Message always renders to the same Content. A missing required
// context key is reported as a *TemplateError naming the key.
type Composer interface {
	Compose(msg Message) (Content, error)
}

// Registry maps notification kinds to their composers. Adding a new kind
// means writing one Composer and one Register call; nothing else changes.
type Registry struct {
	composers map[Kind]Composer
}

// NewRegistry returns a registry populated with the built-in composers.
func NewRegistry(appName string) *Registry {
	r := &Registry{}
	r.Register(KindRegistrationConfirmation, registrationConfirmation{appName: appName})
	r.Register(KindPasswordReset, passwordReset{appName: appName})
	return r
}

// Register binds a composer to a kind, replacing any previous binding.
func (r *Registry) Register(kind Kind, c Composer) {
	if r.composers == nil {
		r.composers = make(map[Kind]Composer)
	}
	r.composers[kind] = c
}

// Lookup returns the composer for kind, if one is registered.
func (r *Registry) Lookup(kind Kind) (Composer, bool) {
	c, ok := r.composers[kind]
	return c, ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.composers))
	for k := range r.composers {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
