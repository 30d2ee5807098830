package client

import (
	"context"
	"errors"
	"testing"

	"customer_portal_backend/platform/logger"
)

type failingSource struct{}

func (failingSource) ListJobs(context.Context) ([]Job, error) {
	return nil, errors.New("upstream down")
}

func (failingSource) GetJob(context.Context, string) (*Job, error) {
	return nil, errors.New("upstream down")
}

func (failingSource) ListJobAttachments(context.Context, string) ([]Attachment, error) {
	return nil, errors.New("upstream down")
}

func (failingSource) FetchAttachment(context.Context, string) ([]byte, string, error) {
	return nil, "", errors.New("upstream down")
}

func newDegradingOverFailingPrimary() *Degrading {
	return NewDegrading(failingSource{}, NewFallback(), logger.New("development"))
}

func TestDegradingListJobsFallsBack(t *testing.T) {
	d := newDegradingOverFailingPrimary()

	jobs, err := d.ListJobs(context.Background())
	if err != nil {
		t.Fatalf("expected fallback data, got %v", err)
	}
	if len(jobs) == 0 {
		t.Fatal("expected fallback jobs")
	}
}

func TestDegradingGetJobFallsBackOnError(t *testing.T) {
	d := newDegradingOverFailingPrimary()

	job, err := d.GetJob(context.Background(), "a1b2c3d4-0001-4000-8000-612fe1a90001")
	if err != nil {
		t.Fatalf("expected fallback data, got %v", err)
	}
	if job == nil || job.GeneratedID != "JOB-1001" {
		t.Fatalf("expected fallback JOB-1001, got %+v", job)
	}
}

func TestDegradingGetJobKeepsAuthoritativeMiss(t *testing.T) {
	// The primary answers "no such job" without error; that answer stands even
	// though the fallback would know the id.
	d := NewDegrading(NewFallback(), failingSource{}, logger.New("development"))

	job, err := d.GetJob(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job != nil {
		t.Fatalf("expected authoritative miss to stand, got %+v", job)
	}
}

func TestDegradingListAttachmentsFallsBack(t *testing.T) {
	d := newDegradingOverFailingPrimary()

	attachments, err := d.ListJobAttachments(context.Background(), "a1b2c3d4-0001-4000-8000-612fe1a90001")
	if err != nil {
		t.Fatalf("expected fallback data, got %v", err)
	}
	if len(attachments) != 2 {
		t.Fatalf("expected 2 fallback attachments, got %d", len(attachments))
	}
}

func TestDegradingFetchAttachmentNeverFallsBack(t *testing.T) {
	d := newDegradingOverFailingPrimary()

	if _, _, err := d.FetchAttachment(context.Background(), "any"); err == nil {
		t.Fatal("expected binary fetch failure to propagate")
	}
}
