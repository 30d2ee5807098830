package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"customer_portal_backend/internal/messages/store"
	"customer_portal_backend/platform/apperr"
	"customer_portal_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeStore struct {
	appended []store.Message
	fail     error
}

func (f *fakeStore) Append(msg store.Message) (store.Message, error) {
	if f.fail != nil {
		return store.Message{}, f.fail
	}
	msg.ID = uuid.New()
	f.appended = append(f.appended, msg)
	return msg, nil
}

func (f *fakeStore) ListForBooking(string) ([]store.Message, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.appended, nil
}

func (f *fakeStore) ListForCustomer(uuid.UUID) ([]store.Message, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.appended, nil
}

func testAuthor() Author {
	return Author{
		CustomerID: uuid.New(),
		Name:       "John Smith",
		Email:      "customer@example.com",
	}
}

func TestAppendAttributesToAuthor(t *testing.T) {
	fs := &fakeStore{}
	svc := New(fs, nil, logger.New("development"))
	author := testAuthor()

	msg, err := svc.Append(context.Background(), "booking-a", author, "  Hello there  ")
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if msg.Content != "Hello there" {
		t.Fatalf("expected trimmed content, got %q", msg.Content)
	}
	if msg.CustomerID != author.CustomerID || msg.CustomerName != author.Name || msg.CustomerEmail != author.Email {
		t.Fatalf("author attribution mismatch: %+v", msg)
	}
	if !msg.IsFromCustomer {
		t.Fatal("expected IsFromCustomer to be set")
	}
}

func TestAppendStripsHTML(t *testing.T) {
	fs := &fakeStore{}
	svc := New(fs, nil, logger.New("development"))

	msg, err := svc.Append(context.Background(), "booking-a", testAuthor(), `<script>alert(1)</script>hello`)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if strings.Contains(msg.Content, "<") {
		t.Fatalf("expected tags stripped, got %q", msg.Content)
	}
}

func TestAppendRejectsEmptyContentWithoutWriting(t *testing.T) {
	fs := &fakeStore{}
	svc := New(fs, nil, logger.New("development"))

	for _, content := range []string{"", "   ", "<p></p>"} {
		if _, err := svc.Append(context.Background(), "booking-a", testAuthor(), content); !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("expected validation error for %q, got %v", content, err)
		}
	}
	if len(fs.appended) != 0 {
		t.Fatalf("validation failure must not write, log has %d records", len(fs.appended))
	}
}

func TestAppendRejectsOversizedContent(t *testing.T) {
	fs := &fakeStore{}
	svc := New(fs, nil, logger.New("development"))

	// 2000 multi-byte runes are allowed; the limit counts characters, not bytes.
	atLimit := strings.Repeat("ä", MaxContentLength)
	if _, err := svc.Append(context.Background(), "booking-a", testAuthor(), atLimit); err != nil {
		t.Fatalf("expected content at the limit to pass, got %v", err)
	}

	over := strings.Repeat("a", MaxContentLength+1)
	if _, err := svc.Append(context.Background(), "booking-a", testAuthor(), over); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for oversized content, got %v", err)
	}
	if len(fs.appended) != 1 {
		t.Fatalf("expected only the at-limit message written, log has %d records", len(fs.appended))
	}
}

func TestAppendWrapsStoreFailure(t *testing.T) {
	fs := &fakeStore{fail: errors.New("disk gone")}
	svc := New(fs, nil, logger.New("development"))

	if _, err := svc.Append(context.Background(), "booking-a", testAuthor(), "hello"); !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if _, err := svc.ListForBooking("booking-a"); !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
