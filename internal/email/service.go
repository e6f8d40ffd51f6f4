package email

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/courierd/courierd/internal/logger"
)

// Service composes and delivers notifications. It selects the composer for
// the message's kind from the registry, renders the content, and hands it to
// the configured delivery provider. The service holds no mutable state across
// calls and is safe for concurrent use.
type Service struct {
	registry *Registry
	sender   Sender
	log      *logger.Logger
}

// NewService creates a new Service.
func NewService(registry *Registry, sender Sender, log *logger.Logger) *Service {
	return &Service{
		registry: registry,
		sender:   sender,
		log:      log.WithComponent("email"),
	}
}

// Send composes and delivers one message.
//
// Composition problems come back as errors: *UnsupportedKindError when no
// composer is registered for the message's kind (no delivery is attempted),
// and *TemplateError, unchanged, when a required context key is missing.
// Transport failures are not errors here: they come back as a DeliveryResult
// with StatusFailed and a human-readable cause, so the caller's own operation
// (registration, reset request) can succeed independently of deliverability.
// The service performs exactly one delivery attempt per call; retrying is the
// caller's decision.
func (s *Service) Send(ctx context.Context, msg Message) (DeliveryResult, error) {
	composer, ok := s.registry.Lookup(msg.Kind())
	if !ok {
		return DeliveryResult{}, &UnsupportedKindError{Kind: msg.Kind()}
	}

	content, err := composer.Compose(msg)
	if err != nil {
		return DeliveryResult{}, err
	}

	result := DeliveryResult{
		AttemptID: uuid.New(),
		Provider:  s.sender.Name(),
		Status:    StatusSent,
	}

	start := time.Now()
	if err := s.sender.Send(ctx, emailFromContent(content, msg.Recipient())); err != nil {
		result.Status = StatusFailed
		result.Error = err.Error()
	}
	s.log.Delivery(result.AttemptID.String(), string(msg.Kind()), msg.Recipient(), string(result.Status), time.Since(start))

	return result, nil
}
