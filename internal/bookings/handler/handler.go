package handler

import (
	"customer_portal_backend/internal/bookings/service"
	"customer_portal_backend/internal/bookings/transport"
	"customer_portal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the booking read endpoints.
type Handler struct {
	svc *service.Service
}

// New creates the bookings handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// List returns all bookings as summaries. An ?email= filter parameter is
// accepted for compatibility but not enforced; the upstream returns all jobs
// to all authenticated customers.
func (h *Handler) List(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	filterEmail := c.Query("email")
	if filterEmail == "" {
		filterEmail = identity.Email()
	}

	jobs, err := h.svc.ListBookings(c.Request.Context(), filterEmail)
	if httpkit.HandleError(c, err) {
		return
	}

	summaries := make([]transport.BookingSummary, len(jobs))
	for i, job := range jobs {
		summaries[i] = transport.ToBookingSummary(job)
	}

	httpkit.OK(c, transport.BookingListResponse{Success: true, Bookings: summaries})
}

// Get returns the detailed view of one booking, 404 when unknown.
func (h *Handler) Get(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	job, err := h.svc.GetBooking(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.BookingDetailResponse{Success: true, Booking: transport.ToBookingDetail(*job)})
}
