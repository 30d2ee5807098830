package transport

import (
	"testing"

	"customer_portal_backend/internal/bookings/client"
)

func TestToBookingDetailNormalizesContactPhone(t *testing.T) {
	job := client.Job{
		UUID:         "u-1",
		GeneratedID:  "JOB-1001",
		ContactFirst: "John",
		ContactLast:  "Smith",
		ContactPhone: "0400 123 456",
		ContactEmail: "customer@example.com",
	}

	detail := ToBookingDetail(job)
	if detail.Contact.Phone != "+61400123456" {
		t.Fatalf("expected E.164 contact phone, got %q", detail.Contact.Phone)
	}
	if detail.Contact.FirstName != "John" || detail.Contact.Email != "customer@example.com" {
		t.Fatalf("contact mapping mismatch: %+v", detail.Contact)
	}
}

func TestToBookingDetailKeepsUnparseablePhone(t *testing.T) {
	detail := ToBookingDetail(client.Job{ContactPhone: "switchboard ext 12"})
	if detail.Contact.Phone != "switchboard ext 12" {
		t.Fatalf("expected unparseable phone passed through, got %q", detail.Contact.Phone)
	}

	empty := ToBookingDetail(client.Job{})
	if empty.Contact.Phone != "" {
		t.Fatalf("expected empty phone to stay empty, got %q", empty.Contact.Phone)
	}
}

func TestToAttachmentResponseDerivesURLs(t *testing.T) {
	resp := ToAttachmentResponse(client.Attachment{UUID: "att-1", FileName: "report.pdf"})
	if resp.DownloadURL != "/api/v1/attachments/att-1/download" {
		t.Fatalf("unexpected download url %q", resp.DownloadURL)
	}
	if resp.ViewURL != "/api/v1/attachments/att-1/view" {
		t.Fatalf("unexpected view url %q", resp.ViewURL)
	}
}
