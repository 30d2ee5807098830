package client

import (
	"context"
	"fmt"
)

// Fallback serves a fixed dataset so the portal stays demoable without an
// upstream credential. This is a demo trait, not a resilience strategy: it
// substitutes canned data instead of surfacing outages, which a production
// deployment must not replicate.
type Fallback struct{}

// NewFallback creates the fixture job source.
func NewFallback() *Fallback {
	return &Fallback{}
}

var fallbackJobs = []Job{
	{
		UUID:         "a1b2c3d4-0001-4000-8000-612fe1a90001",
		GeneratedID:  "JOB-1001",
		Status:       "Work Order",
		Address:      "12 Wattle Street, Brisbane QLD 4000",
		Description:  "Replace hot water system and inspect roof plumbing",
		Date:         "2025-11-03",
		Time:         "09:00",
		TotalAmount:  1480.50,
		WorkDone:     "",
		ContactFirst: "John",
		ContactLast:  "Smith",
		ContactPhone: "0400123456",
		ContactEmail: "customer@example.com",
	},
	{
		UUID:         "a1b2c3d4-0002-4000-8000-612fe1a90002",
		GeneratedID:  "JOB-1002",
		Status:       "Completed",
		Address:      "48 Ferny Grove Road, Samford QLD 4520",
		Description:  "Annual air-conditioning service, two split systems",
		Date:         "2025-10-14",
		Time:         "13:30",
		TotalAmount:  396.00,
		WorkDone:     "Cleaned filters and coils on both units, re-gassed rear unit, tested operation.",
		ContactFirst: "Sarah",
		ContactLast:  "Jones",
		ContactPhone: "0411987654",
		ContactEmail: "sarah.jones@example.com",
	},
	{
		UUID:         "a1b2c3d4-0003-4000-8000-612fe1a90003",
		GeneratedID:  "JOB-1003",
		Status:       "Quote",
		Address:      "7/220 Melbourne Street, South Brisbane QLD 4101",
		Description:  "Quote for switchboard upgrade and smoke alarm compliance",
		Date:         "2025-11-20",
		Time:         "08:00",
		TotalAmount:  0,
		WorkDone:     "",
		ContactFirst: "Mike",
		ContactLast:  "Wilson",
		ContactPhone: "0422555777",
		ContactEmail: "mike.wilson@example.com",
	},
}

var fallbackAttachments = map[string][]Attachment{
	"a1b2c3d4-0001-4000-8000-612fe1a90001": {
		{
			UUID:        "f0e1d2c3-0001-4000-8000-77aa00bb0001",
			FileName:    "hot-water-system-before.jpg",
			ContentType: "image/jpeg",
			CreatedDate: "2025-10-28 11:42:10",
			Description: "Photo taken at quote visit",
		},
		{
			UUID:        "f0e1d2c3-0002-4000-8000-77aa00bb0002",
			FileName:    "quote-1001.pdf",
			ContentType: "application/pdf",
			CreatedDate: "2025-10-28 16:05:33",
			Description: "Accepted quote document",
		},
	},
	"a1b2c3d4-0002-4000-8000-612fe1a90002": {
		{
			UUID:        "f0e1d2c3-0003-4000-8000-77aa00bb0003",
			FileName:    "service-report.pdf",
			ContentType: "application/pdf",
			CreatedDate: "2025-10-14 15:12:02",
			Description: "Completed service report",
		},
	},
}

// ListJobs returns the fixture jobs.
func (f *Fallback) ListJobs(_ context.Context) ([]Job, error) {
	jobs := make([]Job, len(fallbackJobs))
	copy(jobs, fallbackJobs)
	return jobs, nil
}

// GetJob returns the fixture job with the given uuid, or nil when unknown.
func (f *Fallback) GetJob(_ context.Context, id string) (*Job, error) {
	for i := range fallbackJobs {
		if fallbackJobs[i].UUID == id {
			job := fallbackJobs[i]
			return &job, nil
		}
	}
	return nil, nil
}

// ListJobAttachments returns the fixture attachments for a job.
func (f *Fallback) ListJobAttachments(_ context.Context, jobID string) ([]Attachment, error) {
	fixtures := fallbackAttachments[jobID]
	attachments := make([]Attachment, len(fixtures))
	copy(attachments, fixtures)
	return attachments, nil
}

// FetchAttachment always fails: there are no canned bytes for arbitrary ids,
// so binary fetches surface the upstream outage instead of fabricating data.
func (f *Fallback) FetchAttachment(_ context.Context, id string) ([]byte, string, error) {
	return nil, "", fmt.Errorf("no upstream available for attachment %s", id)
}

// Compile-time check that Fallback implements JobSource
var _ JobSource = (*Fallback)(nil)
