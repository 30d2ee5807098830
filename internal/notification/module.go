// Package notification subscribes to domain events and surfaces them for
// staff. In this proof of concept the sink is the structured log; a real
// deployment would swap in an alerting channel here.
package notification

import (
	"context"

	"customer_portal_backend/internal/events"
	"customer_portal_backend/platform/logger"
)

// Module is the notification module. It is not HTTP-facing.
type Module struct {
	log *logger.Logger
}

// New creates the notification module.
func New(log *logger.Logger) *Module {
	return &Module{log: log}
}

// RegisterHandlers subscribes the module to the domain events it cares about.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.MessageCreated{}.EventName(), m)
	bus.Subscribe(events.CustomerLoggedIn{}.EventName(), m)
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(_ context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.MessageCreated:
		m.log.Info("customer message awaiting staff response",
			"message_id", e.MessageID,
			"booking_id", e.BookingID,
			"customer", e.CustomerName,
		)
	case events.CustomerLoggedIn:
		m.log.Info("customer logged in", "customer_id", e.CustomerID, "email", e.Email)
	}
	return nil
}

// Compile-time check that Module implements events.Handler
var _ events.Handler = (*Module)(nil)
