// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated customer's identity.
// This interface abstracts identity extraction from the web framework,
// allowing handlers to access customer claims without depending on Gin.
type Identity interface {
	// CustomerID returns the authenticated customer's ID.
	CustomerID() uuid.UUID
	// Email returns the customer's email address.
	Email() string
	// FirstName returns the customer's first name.
	FirstName() string
	// LastName returns the customer's last name.
	LastName() string
	// FullName returns the customer's display name.
	FullName() string
	// IsAuthenticated returns true if the customer is authenticated.
	IsAuthenticated() bool
}

// identity is the concrete implementation of Identity.
type identity struct {
	customerID    uuid.UUID
	email         string
	firstName     string
	lastName      string
	authenticated bool
}

func (i *identity) CustomerID() uuid.UUID {
	return i.customerID
}

func (i *identity) Email() string {
	return i.email
}

func (i *identity) FirstName() string {
	return i.firstName
}

func (i *identity) LastName() string {
	return i.lastName
}

func (i *identity) FullName() string {
	if i.firstName == "" {
		return i.lastName
	}
	if i.lastName == "" {
		return i.firstName
	}
	return i.firstName + " " + i.lastName
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if session claims are not present.
func GetIdentity(c *gin.Context) Identity {
	customerID, ok := c.Get(ContextCustomerIDKey)
	if !ok {
		return &identity{authenticated: false}
	}

	cid, ok := customerID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	return &identity{
		customerID:    cid,
		email:         c.GetString(ContextCustomerEmailKey),
		firstName:     c.GetString(ContextCustomerFirstNameKey),
		lastName:      c.GetString(ContextCustomerLastNameKey),
		authenticated: true,
	}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the customer is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		abortUnauthorized(c, "unauthorized")
		return nil
	}
	return id
}
