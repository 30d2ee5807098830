package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer_portal_backend/platform/logger"
)

func TestSplitDateTime(t *testing.T) {
	cases := []struct {
		date      string
		start     string
		wantDate  string
		wantStart string
	}{
		{"2025-11-03", "09:00", "2025-11-03", "09:00"},
		{"2025-11-03 09:00:00", "", "2025-11-03", "09:00"},
		{"2025-11-03 09:00:00", "10:30", "2025-11-03", "10:30"},
		{"", "", "", ""},
	}
	for _, tc := range cases {
		gotDate, gotStart := splitDateTime(tc.date, tc.start)
		if gotDate != tc.wantDate || gotStart != tc.wantStart {
			t.Fatalf("splitDateTime(%q, %q) = %q, %q; want %q, %q",
				tc.date, tc.start, gotDate, gotStart, tc.wantDate, tc.wantStart)
		}
	}
}

func TestAttachmentNameCoalescing(t *testing.T) {
	withAttachmentName := apiAttachment{UUID: "a", AttachmentName: "before.jpg", FileName: "ignored.jpg"}
	if got := withAttachmentName.toAttachment(); got.FileName != "before.jpg" {
		t.Fatalf("expected attachment_name to win, got %q", got.FileName)
	}

	legacyRecord := apiAttachment{UUID: "b", FileName: "report.pdf"}
	if got := legacyRecord.toAttachment(); got.FileName != "report.pdf" {
		t.Fatalf("expected file_name fallback, got %q", got.FileName)
	}
}

func TestAttachmentContentTypeFromExtension(t *testing.T) {
	explicit := apiAttachment{UUID: "a", ContentType: "image/png", FileType: ".jpg"}
	if got := explicit.toAttachment(); got.ContentType != "image/png" {
		t.Fatalf("expected declared content type to win, got %q", got.ContentType)
	}

	fromExtension := apiAttachment{UUID: "b", FileType: ".pdf"}
	if got := fromExtension.toAttachment(); got.ContentType != "application/pdf" {
		t.Fatalf("expected type from extension, got %q", got.ContentType)
	}

	unknown := apiAttachment{UUID: "c"}
	if got := unknown.toAttachment(); got.ContentType != "application/octet-stream" {
		t.Fatalf("expected octet-stream default, got %q", got.ContentType)
	}
}

func TestLiveSendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	live := NewLive(srv.URL, "secret-key", logger.New("development"))
	if _, err := live.ListJobs(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "secret-key" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
}

func TestLiveGetJobMapsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/job/abc.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"uuid": "abc",
			"generated_job_id": "JOB-2001",
			"status": "Work Order",
			"job_address": "1 Test St",
			"date": "2025-11-03 09:00:00",
			"total_invoice_amount": "1480.50",
			"job_contact_first": "John"
		}`))
	}))
	defer srv.Close()

	live := NewLive(srv.URL, "k", logger.New("development"))
	job, err := live.GetJob(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job == nil {
		t.Fatal("expected a job")
	}
	if job.GeneratedID != "JOB-2001" || job.Date != "2025-11-03" || job.Time != "09:00" {
		t.Fatalf("field mapping mismatch: %+v", job)
	}
	if job.TotalAmount != 1480.50 {
		t.Fatalf("expected quoted decimal parsed, got %v", job.TotalAmount)
	}
}

func TestLiveGetJobTreats404AsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	live := NewLive(srv.URL, "k", logger.New("development"))
	job, err := live.GetJob(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected 404 to map to nil, nil; got %v", err)
	}
	if job != nil {
		t.Fatalf("expected nil job, got %+v", job)
	}
}

func TestLiveListJobsSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	live := NewLive(srv.URL, "k", logger.New("development"))
	if _, err := live.ListJobs(context.Background()); err == nil {
		t.Fatal("expected an error for upstream 502")
	}
}

func TestLiveFetchAttachmentDefaultsContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/attachment/abc.file" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header()["Content-Type"] = nil // suppress the implicit header
		w.Write([]byte{0x25, 0x50, 0x44, 0x46})
	}))
	defer srv.Close()

	live := NewLive(srv.URL, "k", logger.New("development"))
	body, contentType, err := live.FetchAttachment(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(body))
	}
	if contentType != "application/octet-stream" {
		t.Fatalf("expected octet-stream default, got %q", contentType)
	}
}
