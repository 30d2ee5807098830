package handler

import (
	"net/http"

	"customer_portal_backend/internal/auth/service"
	"customer_portal_backend/internal/auth/transport"
	"customer_portal_backend/platform/httpkit"
	"customer_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "email and phone are required"
)

// Handler exposes the auth endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates the auth handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Login authenticates a customer by email + phone and returns a session token
// plus the public customer fields.
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation Error", msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation Error", msgValidationFailed)
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.Email, req.Phone)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.LoginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
		Customer: transport.CustomerResponse{
			ID:        session.Customer.ID.String(),
			Email:     session.Customer.Email,
			FirstName: session.Customer.FirstName,
			LastName:  session.Customer.LastName,
		},
	})
}

// Me echoes the authenticated session's claims.
func (h *Handler) Me(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	httpkit.OK(c, transport.MeResponse{
		Success: true,
		Customer: transport.CustomerResponse{
			ID:        identity.CustomerID().String(),
			Email:     identity.Email(),
			FirstName: identity.FirstName(),
			LastName:  identity.LastName(),
		},
	})
}
