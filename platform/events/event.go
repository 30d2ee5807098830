// Package events carries domain events between modules so they never import
// each other directly. The portal publishes a handful of events (logins,
// new messages) and the notification module consumes them.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the occurrence timestamp; embed it in concrete events.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps a base event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler consumes events it subscribed to.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes events to subscribed handlers. Subscribe keys on the value
// returned by Event.EventName.
type Bus interface {
	// Publish dispatches asynchronously; handler errors are logged, not returned.
	Publish(ctx context.Context, event Event)

	// PublishSync waits for all handlers and returns the first error.
	PublishSync(ctx context.Context, event Event) error

	Subscribe(eventName string, handler Handler)
}
