package client

import (
	"context"
	"strings"
	"testing"
)

func TestFallbackListJobs(t *testing.T) {
	f := NewFallback()

	jobs, err := f.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 fixture jobs, got %d", len(jobs))
	}
	for _, job := range jobs {
		if !strings.HasPrefix(job.GeneratedID, "JOB-") {
			t.Fatalf("expected JOB- prefixed id, got %q", job.GeneratedID)
		}
		if job.UUID == "" || job.Status == "" {
			t.Fatalf("incomplete fixture job: %+v", job)
		}
	}
}

func TestFallbackListJobsReturnsCopies(t *testing.T) {
	f := NewFallback()

	first, err := f.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first[0].Status = "mutated"

	second, err := f.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].Status == "mutated" {
		t.Fatal("fixture data must not be shared with callers")
	}
}

func TestFallbackGetJob(t *testing.T) {
	f := NewFallback()

	job, err := f.GetJob(context.Background(), "a1b2c3d4-0001-4000-8000-612fe1a90001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job == nil || job.GeneratedID != "JOB-1001" {
		t.Fatalf("expected JOB-1001, got %+v", job)
	}

	unknown, err := f.GetJob(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unknown != nil {
		t.Fatalf("expected nil for unknown id, got %+v", unknown)
	}
}

func TestFallbackListJobAttachments(t *testing.T) {
	f := NewFallback()

	attachments, err := f.ListJobAttachments(context.Background(), "a1b2c3d4-0001-4000-8000-612fe1a90001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attachments) != 2 {
		t.Fatalf("expected 2 fixture attachments, got %d", len(attachments))
	}

	none, err := f.ListJobAttachments(context.Background(), "a1b2c3d4-0003-4000-8000-612fe1a90003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no attachments for the quote job, got %d", len(none))
	}
}

func TestFallbackFetchAttachmentAlwaysFails(t *testing.T) {
	f := NewFallback()

	if _, _, err := f.FetchAttachment(context.Background(), "f0e1d2c3-0001-4000-8000-77aa00bb0001"); err == nil {
		t.Fatal("expected an error: fixtures carry no binary data")
	}
}
