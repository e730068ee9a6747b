// Package notification provides the lifecycle event emitter boundary.
package notification

import (
	"context"

	"go.uber.org/zap"
)

// Event identifies a lifecycle event type delivered to the user.
type Event string

// Lifecycle events fired on registration and payment transitions.
const (
	EventRegistrationCreated    Event = "registration.created"
	EventRegistrationWaitlisted Event = "registration.waitlisted"
	EventRegistrationConfirmed  Event = "registration.confirmed"
	EventRegistrationWithdrawn  Event = "registration.withdrawn"
	EventRegistrationCancelled  Event = "registration.cancelled"
	EventRegistrationPromoted   Event = "registration.promoted"
	EventPaymentFailed          Event = "payment.failed"
	EventPaymentRefunded        Event = "payment.refunded"
)

// Notifier receives lifecycle events for delivery to the end user.
// Delivery is fire-and-forget: implementations must not fail the
// operation that produced the event.
type Notifier interface {
	Notify(ctx context.Context, userID string, event Event, payload map[string]interface{})
}

// LogNotifier writes events to the structured log. It is the default
// sink; a real delivery channel plugs in behind the Notifier interface.
type LogNotifier struct {
	logger *zap.SugaredLogger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the event with its payload.
func (n *LogNotifier) Notify(_ context.Context, userID string, event Event, payload map[string]interface{}) {
	n.logger.Infow("notification",
		"user_id", userID,
		"event", string(event),
		"payload", payload,
	)
}
