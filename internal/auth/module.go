// Package auth provides the authentication bounded context module:
// the static credential store, the session issuer and the auth endpoints.
package auth

import (
	"customer_portal_backend/internal/auth/handler"
	"customer_portal_backend/internal/auth/service"
	"customer_portal_backend/internal/auth/store"
	"customer_portal_backend/internal/events"
	apphttp "customer_portal_backend/internal/http"
	"customer_portal_backend/platform/config"
	"customer_portal_backend/platform/logger"
	"customer_portal_backend/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	lookup  store.CustomerLookup
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(lookup store.CustomerLookup, cfg config.SessionConfig, bus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	svc := service.New(lookup, cfg, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		lookup:  lookup,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the session issuer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authGroup := ctx.V1.Group("/auth")
	authGroup.POST("/login", ctx.AuthRateLimiter.RateLimit(), m.handler.Login)

	ctx.Protected.GET("/auth/me", m.handler.Me)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
