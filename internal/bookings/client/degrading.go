package client

import (
	"context"

	"customer_portal_backend/platform/logger"
)

// Degrading wraps a primary JobSource and falls back to a secondary one when
// read calls fail. FetchAttachment never degrades: binary fetches propagate
// upstream failures so write-path errors stay visible.
type Degrading struct {
	primary   JobSource
	secondary JobSource
	log       *logger.Logger
}

// NewDegrading creates the degrading wrapper.
func NewDegrading(primary, secondary JobSource, log *logger.Logger) *Degrading {
	return &Degrading{primary: primary, secondary: secondary, log: log}
}

// ListJobs lists from the primary, degrading to the secondary on error.
func (d *Degrading) ListJobs(ctx context.Context) ([]Job, error) {
	jobs, err := d.primary.ListJobs(ctx)
	if err != nil {
		d.log.Warn("upstream job listing failed, serving fallback data", "error", err)
		return d.secondary.ListJobs(ctx)
	}
	return jobs, nil
}

// GetJob fetches from the primary, degrading to the secondary on error.
// An authoritative "unknown id" answer (nil, nil) does not degrade.
func (d *Degrading) GetJob(ctx context.Context, id string) (*Job, error) {
	job, err := d.primary.GetJob(ctx, id)
	if err != nil {
		d.log.Warn("upstream job fetch failed, serving fallback data", "error", err, "job_id", id)
		return d.secondary.GetJob(ctx, id)
	}
	return job, nil
}

// ListJobAttachments lists from the primary, degrading to the secondary on error.
func (d *Degrading) ListJobAttachments(ctx context.Context, jobID string) ([]Attachment, error) {
	attachments, err := d.primary.ListJobAttachments(ctx, jobID)
	if err != nil {
		d.log.Warn("upstream attachment listing failed, serving fallback data", "error", err, "job_id", jobID)
		return d.secondary.ListJobAttachments(ctx, jobID)
	}
	return attachments, nil
}

// FetchAttachment proxies the primary without fallback.
func (d *Degrading) FetchAttachment(ctx context.Context, id string) ([]byte, string, error) {
	return d.primary.FetchAttachment(ctx, id)
}

// Compile-time check that Degrading implements JobSource
var _ JobSource = (*Degrading)(nil)
