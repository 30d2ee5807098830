// Package messages provides the messages bounded context module: the
// file-backed message log and its endpoints.
package messages

import (
	"customer_portal_backend/internal/events"
	apphttp "customer_portal_backend/internal/http"
	"customer_portal_backend/internal/messages/handler"
	"customer_portal_backend/internal/messages/service"
	"customer_portal_backend/internal/messages/store"
	"customer_portal_backend/platform/config"
	"customer_portal_backend/platform/logger"
	"customer_portal_backend/platform/validator"
)

// Module is the messages bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	store   *store.FileStore
}

// NewModule creates and initializes the messages module.
func NewModule(cfg config.MessagesConfig, bus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	fileStore := store.NewFileStore(cfg.GetMessagesFile())
	svc := service.New(fileStore, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		store:   fileStore,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "messages"
}

// Service returns the messages service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts message routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/messages/booking/:id", m.handler.ListForBooking)
	ctx.Protected.POST("/messages/booking/:id", m.handler.Send)
	ctx.Protected.GET("/messages/all", m.handler.ListAll)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
