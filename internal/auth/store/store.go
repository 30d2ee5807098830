// Package store provides the credential store for the auth module.
// Customers are static reference data seeded at process start; there is no
// mutation path. The lookup abstraction exists so tests can substitute
// fixtures without touching process-wide state.
package store

import (
	"context"
	"strings"

	"customer_portal_backend/platform/phone"

	"github.com/google/uuid"
)

// Customer is an immutable customer credential record.
type Customer struct {
	ID        uuid.UUID
	Email     string // lowercase
	Phone     string // digits-only match key
	FirstName string
	LastName  string
}

// CustomerLookup resolves customers by their normalized credentials.
type CustomerLookup interface {
	// FindByCredentials returns the customer matching the given normalized
	// email and phone match key, or nil when no customer matches.
	FindByCredentials(ctx context.Context, email, phoneKey string) (*Customer, error)
	// FindByID returns the customer with the given ID, or nil when unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
}

// Static is an in-memory CustomerLookup over a fixed customer list.
type Static struct {
	customers []Customer
}

// NewStatic creates a credential store over the given customer records.
// Email is lowercased and phone reduced to its match key on the way in, so
// callers may seed records in any human-entered format.
func NewStatic(customers []Customer) *Static {
	normalized := make([]Customer, len(customers))
	for i, customer := range customers {
		customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
		customer.Phone = phone.MatchKey(customer.Phone)
		normalized[i] = customer
	}
	return &Static{customers: normalized}
}

// NewSeeded creates a credential store with the demo customer records.
func NewSeeded() *Static {
	return NewStatic([]Customer{
		{
			ID:        uuid.MustParse("5f8a1c3e-9b24-4d7a-8e16-2c4b9d0f1a35"),
			Email:     "customer@example.com",
			Phone:     "0400123456",
			FirstName: "John",
			LastName:  "Smith",
		},
		{
			ID:        uuid.MustParse("b2d94e71-06cf-48a3-9c55-7e81f3a6d210"),
			Email:     "sarah.jones@example.com",
			Phone:     "0411987654",
			FirstName: "Sarah",
			LastName:  "Jones",
		},
		{
			ID:        uuid.MustParse("c7a30f59-d412-4b88-a1e6-90b5c2d8e473"),
			Email:     "mike.wilson@example.com",
			Phone:     "0422555777",
			FirstName: "Mike",
			LastName:  "Wilson",
		},
	})
}

// FindByCredentials returns the customer matching both normalized fields.
func (s *Static) FindByCredentials(_ context.Context, email, phoneKey string) (*Customer, error) {
	for i := range s.customers {
		if s.customers[i].Email == email && s.customers[i].Phone == phoneKey {
			customer := s.customers[i]
			return &customer, nil
		}
	}
	return nil, nil
}

// FindByID returns the customer with the given ID.
func (s *Static) FindByID(_ context.Context, id uuid.UUID) (*Customer, error) {
	for i := range s.customers {
		if s.customers[i].ID == id {
			customer := s.customers[i]
			return &customer, nil
		}
	}
	return nil, nil
}

// Compile-time check that Static implements CustomerLookup
var _ CustomerLookup = (*Static)(nil)
