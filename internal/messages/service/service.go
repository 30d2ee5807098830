// Package service implements the message log operations: validated appends
// attributed to the calling session and reverse-chronological reads.
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"customer_portal_backend/internal/events"
	"customer_portal_backend/internal/messages/store"
	"customer_portal_backend/platform/apperr"
	"customer_portal_backend/platform/logger"
	"customer_portal_backend/platform/sanitize"

	"github.com/google/uuid"
)

// MaxContentLength is the maximum message length in characters.
const MaxContentLength = 2000

// Author identifies who is sending a message, taken from session claims.
type Author struct {
	CustomerID uuid.UUID
	Name       string
	Email      string
}

// MessageStore is the persistence interface the service depends on.
type MessageStore interface {
	Append(msg store.Message) (store.Message, error)
	ListForBooking(bookingID string) ([]store.Message, error)
	ListForCustomer(customerID uuid.UUID) ([]store.Message, error)
}

// Service validates and appends messages and lists them.
type Service struct {
	store MessageStore
	bus   events.Bus
	log   *logger.Logger
}

// New creates the messages service.
func New(messageStore MessageStore, bus events.Bus, log *logger.Logger) *Service {
	return &Service{store: messageStore, bus: bus, log: log}
}

// Append validates the content, attributes the message to the author and
// persists it. Validation failures never touch the log.
func (s *Service) Append(ctx context.Context, bookingID string, author Author, content string) (store.Message, error) {
	trimmed := strings.TrimSpace(sanitize.Text(content))
	if trimmed == "" {
		return store.Message{}, apperr.Validation("message content is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxContentLength {
		return store.Message{}, apperr.Validation("message content exceeds 2000 characters")
	}

	msg, err := s.store.Append(store.Message{
		BookingID:      bookingID,
		CustomerID:     author.CustomerID,
		CustomerName:   author.Name,
		CustomerEmail:  author.Email,
		Content:        trimmed,
		IsFromCustomer: true,
	})
	if err != nil {
		s.log.StoreError("append message", err)
		return store.Message{}, apperr.Wrap(apperr.KindInternal, "failed to save message", err)
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.MessageCreated{
			BaseEvent:    events.NewBaseEvent(),
			MessageID:    msg.ID,
			BookingID:    msg.BookingID,
			CustomerID:   msg.CustomerID,
			CustomerName: msg.CustomerName,
		})
	}

	return msg, nil
}

// ListForBooking returns the booking's messages, newest first.
func (s *Service) ListForBooking(bookingID string) ([]store.Message, error) {
	messages, err := s.store.ListForBooking(bookingID)
	if err != nil {
		s.log.StoreError("list booking messages", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load messages", err)
	}
	return messages, nil
}

// ListForCustomer returns the customer's messages, newest first.
func (s *Service) ListForCustomer(customerID uuid.UUID) ([]store.Message, error) {
	messages, err := s.store.ListForCustomer(customerID)
	if err != nil {
		s.log.StoreError("list customer messages", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load messages", err)
	}
	return messages, nil
}
