// Package service composes the upstream job source into the portal's booking
// views, owning the error taxonomy for the booking read paths.
package service

import (
	"context"

	"customer_portal_backend/internal/bookings/client"
	"customer_portal_backend/platform/apperr"
	"customer_portal_backend/platform/logger"
)

// Service exposes booking and attachment operations over a JobSource.
type Service struct {
	source client.JobSource
	log    *logger.Logger
}

// New creates the bookings service.
func New(source client.JobSource, log *logger.Logger) *Service {
	return &Service{source: source, log: log}
}

// ListBookings returns every job the upstream exposes. The customer email is
// accepted for log context only: the upstream has no per-customer association,
// so every authenticated customer sees every job (documented POC behavior).
func (s *Service) ListBookings(ctx context.Context, customerEmail string) ([]client.Job, error) {
	jobs, err := s.source.ListJobs(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "failed to load bookings", err)
	}

	s.log.Debug("bookings listed", "count", len(jobs), "customer_email", customerEmail)
	return jobs, nil
}

// GetBooking returns the job with the given uuid or a NotFound error.
func (s *Service) GetBooking(ctx context.Context, id string) (*client.Job, error) {
	job, err := s.source.GetJob(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "failed to load booking", err)
	}
	if job == nil {
		return nil, apperr.NotFound("booking not found")
	}
	return job, nil
}

// ListAttachments returns attachment metadata for a booking.
func (s *Service) ListAttachments(ctx context.Context, bookingID string) ([]client.Attachment, error) {
	attachments, err := s.source.ListJobAttachments(ctx, bookingID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "failed to load attachments", err)
	}
	return attachments, nil
}

// FetchAttachment returns the raw bytes and content type for one attachment.
// Failures propagate: there is no fallback for binary content.
func (s *Service) FetchAttachment(ctx context.Context, id string) ([]byte, string, error) {
	body, contentType, err := s.source.FetchAttachment(ctx, id)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.KindUpstream, "failed to fetch attachment", err)
	}
	return body, contentType, nil
}
