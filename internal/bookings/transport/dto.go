package transport

import (
	"customer_portal_backend/internal/bookings/client"
	"customer_portal_backend/platform/phone"
)

// BookingSummary is the list-view shape of a job.
type BookingSummary struct {
	ID          string  `json:"id"`
	JobNumber   string  `json:"jobNumber"`
	Status      string  `json:"status"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	TotalAmount float64 `json:"totalAmount"`
}

// BookingContact is the contact sub-object on the detail view.
type BookingContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// BookingDetail is the detail-view shape of a job.
type BookingDetail struct {
	BookingSummary
	WorkDone string         `json:"workDone"`
	Contact  BookingContact `json:"contact"`
}

// BookingListResponse wraps the booking listing.
type BookingListResponse struct {
	Success  bool             `json:"success"`
	Bookings []BookingSummary `json:"bookings"`
}

// BookingDetailResponse wraps one booking.
type BookingDetailResponse struct {
	Success bool          `json:"success"`
	Booking BookingDetail `json:"booking"`
}

// AttachmentResponse is one attachment with derived download URLs.
type AttachmentResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	CreatedDate string `json:"createdDate"`
	Description string `json:"description"`
	DownloadURL string `json:"downloadUrl"`
	ViewURL     string `json:"viewUrl"`
}

// AttachmentListResponse wraps the attachment listing for a booking.
type AttachmentListResponse struct {
	Success     bool                 `json:"success"`
	Attachments []AttachmentResponse `json:"attachments"`
}

// ToBookingSummary maps an upstream job to its list view.
func ToBookingSummary(job client.Job) BookingSummary {
	return BookingSummary{
		ID:          job.UUID,
		JobNumber:   job.GeneratedID,
		Status:      job.Status,
		Address:     job.Address,
		Description: job.Description,
		Date:        job.Date,
		Time:        job.Time,
		TotalAmount: job.TotalAmount,
	}
}

// ToBookingDetail maps an upstream job to its detail view. The contact phone
// arrives in whatever format the upstream holds, so it is normalized to E.164
// for display.
func ToBookingDetail(job client.Job) BookingDetail {
	return BookingDetail{
		BookingSummary: ToBookingSummary(job),
		WorkDone:       job.WorkDone,
		Contact: BookingContact{
			FirstName: job.ContactFirst,
			LastName:  job.ContactLast,
			Phone:     phone.NormalizeE164(job.ContactPhone),
			Email:     job.ContactEmail,
		},
	}
}

// ToAttachmentResponse maps upstream attachment metadata and derives the
// portal download/view URLs.
func ToAttachmentResponse(att client.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          att.UUID,
		FileName:    att.FileName,
		ContentType: att.ContentType,
		CreatedDate: att.CreatedDate,
		Description: att.Description,
		DownloadURL: "/api/v1/attachments/" + att.UUID + "/download",
		ViewURL:     "/api/v1/attachments/" + att.UUID + "/view",
	}
}
