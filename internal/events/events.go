// Package events re-exports the platform event bus and defines the domain
// events exchanged between modules.
package events

import (
	platformevents "customer_portal_backend/platform/events"
	"customer_portal_backend/platform/logger"

	"github.com/google/uuid"
)

// Bus is a type alias to the platform Bus interface.
type Bus = platformevents.Bus

// Event is a type alias to the platform Event interface.
type Event = platformevents.Event

// Handler is a type alias to the platform Handler interface.
type Handler = platformevents.Handler

// InMemoryBus is a type alias to the platform InMemoryBus.
type InMemoryBus = platformevents.InMemoryBus

// BaseEvent is a type alias to the platform BaseEvent.
type BaseEvent = platformevents.BaseEvent

// NewBaseEvent creates a base event stamped with the current time.
func NewBaseEvent() BaseEvent {
	return platformevents.NewBaseEvent()
}

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}

// CustomerLoggedIn is published after a successful login.
type CustomerLoggedIn struct {
	platformevents.BaseEvent
	CustomerID uuid.UUID
	Email      string
}

// EventName returns the event identifier.
func (CustomerLoggedIn) EventName() string { return "auth.customer_logged_in" }

// MessageCreated is published after a message is appended to the log.
type MessageCreated struct {
	platformevents.BaseEvent
	MessageID    uuid.UUID
	BookingID    string
	CustomerID   uuid.UUID
	CustomerName string
}

// EventName returns the event identifier.
func (MessageCreated) EventName() string { return "messages.message_created" }
