package handler

import (
	"net/http"

	"customer_portal_backend/internal/messages/service"
	"customer_portal_backend/internal/messages/transport"
	"customer_portal_backend/platform/httpkit"
	"customer_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "invalid request"

// Handler exposes the message endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates the messages handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListForBooking returns a booking's messages, newest first.
func (h *Handler) ListForBooking(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	messages, err := h.svc.ListForBooking(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToMessageListResponse(messages))
}

// Send validates and appends a message, attributing authorship to the calling
// session's identity.
func (h *Handler) Send(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation Error", msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation Error", "message content is required and limited to 2000 characters")
		return
	}

	author := service.Author{
		CustomerID: identity.CustomerID(),
		Name:       identity.FullName(),
		Email:      identity.Email(),
	}

	msg, err := h.svc.Append(c.Request.Context(), c.Param("id"), author, req.Content)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.SendMessageResponse{
		Success: true,
		Message: transport.ToMessageResponse(msg),
	})
}

// ListAll returns every message authored by the calling customer.
func (h *Handler) ListAll(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	messages, err := h.svc.ListForCustomer(identity.CustomerID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToMessageListResponse(messages))
}
