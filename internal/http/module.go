// Package http provides HTTP server infrastructure including the Module interface
// that all domain modules must implement for route registration.
package http

import (
	"customer_portal_backend/platform/config"
	"customer_portal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
// Each domain module implements this interface to encapsulate its own
// route setup, keeping the main router decoupled from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router group.
	// The RouterContext provides access to shared middleware and configuration.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
// This avoids passing many parameters to each module's RegisterRoutes method.
type RouterContext struct {
	// Engine is the root Gin engine for modules that need engine-level access.
	Engine *gin.Engine
	// V1 is the /api/v1 route group.
	V1 *gin.RouterGroup
	// Protected is the session-authenticated route group under /api/v1.
	Protected *gin.RouterGroup
	// Config is the session configuration for auth middleware (scoped access).
	Config config.SessionConfig
	// SessionMiddleware validates session tokens for modules that gate
	// individual routes (e.g. attachment endpoints behind the policy flag).
	SessionMiddleware gin.HandlerFunc
	// AuthRateLimiter is the stricter rate limiter for login routes.
	AuthRateLimiter *httpkit.AuthRateLimiter
}
