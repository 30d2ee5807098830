// Package bookings provides the bookings bounded context module: the upstream
// job source, booking views and attachment passthrough endpoints.
package bookings

import (
	"customer_portal_backend/internal/bookings/client"
	"customer_portal_backend/internal/bookings/handler"
	"customer_portal_backend/internal/bookings/service"
	apphttp "customer_portal_backend/internal/http"
	"customer_portal_backend/platform/config"
	"customer_portal_backend/platform/logger"
)

// ModuleConfig combines the config interfaces the bookings module needs.
type ModuleConfig interface {
	config.UpstreamConfig
	config.AttachmentPolicyConfig
}

// Module is the bookings bounded context module implementing http.Module.
type Module struct {
	handler           *handler.Handler
	attachments       *handler.AttachmentsHandler
	service           *service.Service
	attachmentsPublic bool
}

// NewModule creates and initializes the bookings module. Without an upstream
// API key the module serves the fixed fallback dataset; with one, the live
// client degrades to the fallback on read failures.
func NewModule(cfg ModuleConfig, log *logger.Logger) *Module {
	var source client.JobSource = client.NewFallback()
	if cfg.IsUpstreamEnabled() {
		live := client.NewLive(cfg.GetUpstreamBaseURL(), cfg.GetUpstreamAPIKey(), log)
		source = client.NewDegrading(live, source, log)
		log.Info("bookings module using live upstream", "base_url", cfg.GetUpstreamBaseURL())
	} else {
		log.Warn("SERVICEM8_API_KEY not configured; bookings module serving fallback data")
	}

	svc := service.New(source, log)

	return &Module{
		handler:           handler.New(svc),
		attachments:       handler.NewAttachmentsHandler(svc),
		service:           svc,
		attachmentsPublic: cfg.AttachmentsArePublic(),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "bookings"
}

// Service returns the bookings service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts booking and attachment routes on the router context.
// The binary endpoints are open when the attachment policy says so (demo mode,
// lets <img> tags load without custom headers) and session-gated otherwise.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/bookings", m.handler.List)
	ctx.Protected.GET("/bookings/:id", m.handler.Get)
	ctx.Protected.GET("/attachments/booking/:id", m.attachments.ListForBooking)

	binary := ctx.V1.Group("/attachments")
	if !m.attachmentsPublic {
		binary.Use(ctx.SessionMiddleware)
	}
	binary.GET("/:id/download", m.attachments.Download)
	binary.GET("/:id/view", m.attachments.View)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
