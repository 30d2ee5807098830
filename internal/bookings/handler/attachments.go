package handler

import (
	"net/http"
	"strconv"

	"customer_portal_backend/internal/bookings/service"
	"customer_portal_backend/internal/bookings/transport"
	"customer_portal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// AttachmentsHandler handles attachment metadata and binary passthrough.
type AttachmentsHandler struct {
	svc *service.Service
}

// NewAttachmentsHandler creates the attachments handler.
func NewAttachmentsHandler(svc *service.Service) *AttachmentsHandler {
	return &AttachmentsHandler{svc: svc}
}

// ListForBooking returns attachment metadata for a booking with derived
// download URLs.
func (h *AttachmentsHandler) ListForBooking(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	attachments, err := h.svc.ListAttachments(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.AttachmentResponse, len(attachments))
	for i, att := range attachments {
		items[i] = transport.ToAttachmentResponse(att)
	}

	httpkit.OK(c, transport.AttachmentListResponse{Success: true, Attachments: items})
}

// Download streams the attachment bytes with a download disposition.
func (h *AttachmentsHandler) Download(c *gin.Context) {
	h.serveBinary(c, false)
}

// View streams the attachment bytes inline so browsers can render them.
func (h *AttachmentsHandler) View(c *gin.Context) {
	h.serveBinary(c, true)
}

func (h *AttachmentsHandler) serveBinary(c *gin.Context, inline bool) {
	body, contentType, err := h.svc.FetchAttachment(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}

	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	// No filename= parameter: the binary route only carries the attachment
	// uuid, and the filename lives in the listing metadata. Resolving it here
	// would cost a second upstream round-trip per download, so clients that
	// want the real name take it from the attachment listing.
	c.Header("Content-Disposition", disposition)
	c.Header("Content-Length", strconv.Itoa(len(body)))
	c.Data(http.StatusOK, contentType, body)
}
