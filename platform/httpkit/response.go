// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"customer_portal_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format. Error carries a stable
// kind string ("Validation Error", "Unauthorized", "Not Found", "Server Error")
// and Message a human-readable description. No internal detail leaks here.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error sends an error response with the given status code, kind and message.
func Error(c *gin.Context, status int, kind, message string) {
	c.JSON(status, ErrorResponse{Error: kind, Message: message})
}

// Unauthorized sends a 401 response with the generic Unauthorized kind.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, "Unauthorized", message)
}

// HandleError maps domain errors to HTTP responses.
// If the error is a typed *apperr.Error, it uses the error's Kind to determine
// the HTTP status code and the wire-level kind string. Non-typed errors map to
// a 500 Server Error without exposing the underlying message.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{
			Error:   domainErr.KindString(),
			Message: domainErr.Message,
		})
		return true
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Server Error",
		Message: "an unexpected error occurred",
	})
	return true
}
