package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"customer_portal_backend/platform/logger"

	"golang.org/x/sync/singleflight"
)

const maxAttachmentBytes = 32 << 20 // refuse to buffer more than 32 MiB

// Live is the HTTP client for the upstream field-service API. The API key is
// a server-held credential and is never exposed to portal callers.
type Live struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
	listGroup  singleflight.Group
}

// NewLive creates a live upstream client.
func NewLive(baseURL, apiKey string, log *logger.Logger) *Live {
	return &Live{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// ListJobs fetches the full job listing. Concurrent calls share one upstream
// request via singleflight.
func (c *Live) ListJobs(ctx context.Context) ([]Job, error) {
	result, err, _ := c.listGroup.Do("jobs", func() (interface{}, error) {
		var apiJobs []apiJob
		if err := c.getJSON(ctx, c.baseURL+"/job.json", &apiJobs); err != nil {
			return nil, err
		}

		jobs := make([]Job, 0, len(apiJobs))
		for _, raw := range apiJobs {
			jobs = append(jobs, raw.toJob())
		}
		return jobs, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]Job), nil
}

// GetJob fetches a single job by uuid. Returns nil when the upstream reports
// no such job.
func (c *Live) GetJob(ctx context.Context, id string) (*Job, error) {
	var raw apiJob
	err := c.getJSON(ctx, fmt.Sprintf("%s/job/%s.json", c.baseURL, url.PathEscape(id)), &raw)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	job := raw.toJob()
	return &job, nil
}

// ListJobAttachments fetches attachment metadata filtered by the related job.
func (c *Live) ListJobAttachments(ctx context.Context, jobID string) ([]Attachment, error) {
	filter := url.QueryEscape(fmt.Sprintf("related_object_uuid eq '%s'", jobID))
	reqURL := fmt.Sprintf("%s/attachment.json?%%24filter=%s", c.baseURL, filter)

	var apiAttachments []apiAttachment
	if err := c.getJSON(ctx, reqURL, &apiAttachments); err != nil {
		return nil, err
	}

	attachments := make([]Attachment, 0, len(apiAttachments))
	for _, raw := range apiAttachments {
		attachments = append(attachments, raw.toAttachment())
	}
	return attachments, nil
}

// FetchAttachment proxies a single binary GET from the upstream. No caching,
// no retry.
func (c *Live) FetchAttachment(ctx context.Context, id string) ([]byte, string, error) {
	reqURL := fmt.Sprintf("%s/attachment/%s.file", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("fetch attachment", err)
		return nil, "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError("fetch attachment", fmt.Errorf("status %d", resp.StatusCode))
		return nil, "", fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAttachmentBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read attachment body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return body, contentType, nil
}

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return "upstream error: status " + strconv.Itoa(e.status)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.status == http.StatusNotFound
}

func (c *Live) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("upstream request", err)
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - continue to decode
	case http.StatusUnauthorized, http.StatusForbidden:
		c.log.UpstreamError("upstream auth", fmt.Errorf("status %d", resp.StatusCode))
		return &statusError{status: resp.StatusCode}
	default:
		c.log.UpstreamError("upstream request", fmt.Errorf("status %d url %s", resp.StatusCode, reqURL))
		return &statusError{status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.UpstreamError("decode response", err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiJob is the raw job shape returned by the upstream API.
type apiJob struct {
	UUID               string      `json:"uuid"`
	GeneratedJobID     string      `json:"generated_job_id"`
	Status             string      `json:"status"`
	JobAddress         string      `json:"job_address"`
	JobDescription     string      `json:"job_description"`
	Date               string      `json:"date"`
	StartTime          string      `json:"start_time"`
	TotalInvoiceAmount json.Number `json:"total_invoice_amount"`
	WorkDone           string      `json:"work_done_description"`
	ContactFirst       string      `json:"job_contact_first"`
	ContactLast        string      `json:"job_contact_last"`
	ContactPhone       string      `json:"job_contact_phone"`
	ContactEmail       string      `json:"job_contact_email"`
}

func (a *apiJob) toJob() Job {
	total, _ := a.TotalInvoiceAmount.Float64()
	date, startTime := splitDateTime(a.Date, a.StartTime)

	return Job{
		UUID:         a.UUID,
		GeneratedID:  a.GeneratedJobID,
		Status:       a.Status,
		Address:      a.JobAddress,
		Description:  a.JobDescription,
		Date:         date,
		Time:         startTime,
		TotalAmount:  total,
		WorkDone:     a.WorkDone,
		ContactFirst: a.ContactFirst,
		ContactLast:  a.ContactLast,
		ContactPhone: a.ContactPhone,
		ContactEmail: a.ContactEmail,
	}
}

// splitDateTime normalizes the upstream's mixed date/time encodings: the date
// field may carry "YYYY-MM-DD HH:MM:SS" while the work order date may be empty.
func splitDateTime(date, startTime string) (string, string) {
	if parts := strings.SplitN(strings.TrimSpace(date), " ", 2); len(parts) == 2 {
		if startTime == "" {
			startTime = strings.TrimSuffix(parts[1], ":00")
		}
		date = parts[0]
	}
	return date, startTime
}

// apiAttachment is the raw attachment shape returned by the upstream API.
// Filename arrives as either attachment_name or file_name depending on the
// upstream record age, so both are decoded and coalesced.
type apiAttachment struct {
	UUID           string `json:"uuid"`
	AttachmentName string `json:"attachment_name"`
	FileName       string `json:"file_name"`
	FileType       string `json:"file_type"` // extension, e.g. ".jpg"
	ContentType    string `json:"content_type"`
	EditDate       string `json:"edit_date"`
	Description    string `json:"attachment_source"`
}

func (a *apiAttachment) toAttachment() Attachment {
	fileName := a.AttachmentName
	if fileName == "" {
		fileName = a.FileName
	}

	contentType := a.ContentType
	if contentType == "" && a.FileType != "" {
		contentType = mime.TypeByExtension(strings.ToLower(a.FileType))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return Attachment{
		UUID:        a.UUID,
		FileName:    fileName,
		ContentType: contentType,
		CreatedDate: a.EditDate,
		Description: a.Description,
	}
}
