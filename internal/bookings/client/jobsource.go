// Package client provides access to the upstream field-service API that owns
// jobs and attachments. The JobSource abstraction has two implementations: a
// live HTTP client and a fixed fallback dataset, selected at composition time
// by configuration.
package client

import "context"

// Job is a booking as owned by the upstream system. Read-only here.
type Job struct {
	UUID         string
	GeneratedID  string // human-facing job number, e.g. "JOB-1001"
	Status       string
	Address      string
	Description  string
	Date         string // upstream date, YYYY-MM-DD
	Time         string // upstream start time, HH:MM
	TotalAmount  float64
	WorkDone     string
	ContactFirst string
	ContactLast  string
	ContactPhone string
	ContactEmail string
}

// Attachment is file metadata owned by the upstream system. Binary content is
// fetched on demand and never cached locally.
type Attachment struct {
	UUID        string
	FileName    string
	ContentType string
	CreatedDate string
	Description string
}

// JobSource lists and fetches jobs and their attachments.
type JobSource interface {
	// ListJobs returns all jobs visible to the server credential.
	ListJobs(ctx context.Context) ([]Job, error)
	// GetJob returns the job with the given uuid, or nil when unknown.
	GetJob(ctx context.Context, id string) (*Job, error)
	// ListJobAttachments returns attachment metadata for a job.
	ListJobAttachments(ctx context.Context, jobID string) ([]Attachment, error)
	// FetchAttachment returns the raw bytes and content type for an attachment.
	FetchAttachment(ctx context.Context, id string) ([]byte, string, error)
}
