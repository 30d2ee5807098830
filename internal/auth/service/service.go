// Package service implements the session issuer: credential lookup plus
// stateless signed session tokens. There is no server-side session store, so
// verification is purely a signature and expiry check.
package service

import (
	"context"
	"strings"
	"time"

	"customer_portal_backend/internal/auth/store"
	"customer_portal_backend/internal/events"
	"customer_portal_backend/platform/apperr"
	"customer_portal_backend/platform/config"
	"customer_portal_backend/platform/httpkit"
	"customer_portal_backend/platform/logger"
	"customer_portal_backend/platform/phone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionTokenType = "session"

// One generic message for every credential failure so callers cannot probe
// which field was wrong.
const msgInvalidCredentials = "invalid email or phone number"

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Customer  store.Customer
}

// Claims are the customer claims carried by a verified session token.
type Claims struct {
	CustomerID uuid.UUID
	Email      string
	FirstName  string
	LastName   string
}

// Service issues and verifies session tokens.
type Service struct {
	lookup store.CustomerLookup
	cfg    config.SessionConfig
	bus    events.Bus
	log    *logger.Logger
	now    func() time.Time
}

// New creates the session issuer service.
func New(lookup store.CustomerLookup, cfg config.SessionConfig, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		lookup: lookup,
		cfg:    cfg,
		bus:    bus,
		log:    log,
		now:    time.Now,
	}
}

// Login normalizes the submitted credentials, looks up an exact match and
// issues a signed session token with a fixed expiry. A miss on either field
// produces the same Unauthorized error.
func (s *Service) Login(ctx context.Context, email, phoneNumber string) (*Session, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	phoneKey := phone.MatchKey(phoneNumber)

	if normalizedEmail == "" || phoneKey == "" {
		return nil, apperr.Validation("email and phone are required")
	}

	customer, err := s.lookup.FindByCredentials(ctx, normalizedEmail, phoneKey)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "credential lookup failed", err)
	}
	if customer == nil {
		s.log.AuthEvent("login", normalizedEmail, false, "no matching customer")
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	expiresAt := s.now().Add(s.cfg.GetSessionTTL())
	token, err := s.signToken(customer, expiresAt)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to issue session token", err)
	}

	s.log.AuthEvent("login", customer.Email, true, "")
	if s.bus != nil {
		s.bus.Publish(ctx, events.CustomerLoggedIn{
			BaseEvent:  events.NewBaseEvent(),
			CustomerID: customer.ID,
			Email:      customer.Email,
		})
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Customer:  *customer,
	}, nil
}

// Verify validates an Authorization header value of exactly "Bearer <token>"
// shape and returns the embedded customer claims. Missing, malformed, expired
// and bad-signature tokens all report the same Unauthorized kind; the
// distinction stays in the logs.
func (s *Service) Verify(authorizationHeader string) (*Claims, error) {
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, apperr.Unauthorized("missing session token")
	}

	rawToken := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if rawToken == "" {
		return nil, apperr.Unauthorized("missing session token")
	}

	claims, err := httpkit.ParseSessionClaims(rawToken, s.cfg)
	if err != nil {
		s.log.AuthEvent("verify", "", false, err.Error())
		return nil, apperr.Unauthorized("invalid or expired session token")
	}

	customerIDRaw, _ := claims["sub"].(string)
	customerID, err := uuid.Parse(customerIDRaw)
	if err != nil {
		return nil, apperr.Unauthorized("invalid or expired session token")
	}

	return &Claims{
		CustomerID: customerID,
		Email:      claimString(claims, "email"),
		FirstName:  claimString(claims, "first_name"),
		LastName:   claimString(claims, "last_name"),
	}, nil
}

func (s *Service) signToken(customer *store.Customer, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":        customer.ID.String(),
		"type":       sessionTokenType,
		"email":      customer.Email,
		"first_name": customer.FirstName,
		"last_name":  customer.LastName,
		"iat":        s.now().Unix(),
		"exp":        expiresAt.Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetSessionSecret()))
}

func claimString(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)
	return value
}
