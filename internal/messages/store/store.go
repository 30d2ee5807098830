// Package store persists message records as a single JSON array file.
// Every append is a full read-modify-write cycle against that file; a mutex
// serializes the cycle so concurrent appends cannot lose records. The file is
// created lazily on first use.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message is one record in the message log. Records are append-only: never
// updated or deleted.
type Message struct {
	ID             uuid.UUID `json:"id"`
	BookingID      string    `json:"bookingId"`
	CustomerID     uuid.UUID `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	IsFromCustomer bool      `json:"isFromCustomer"`
}

// FileStore is the file-backed message log.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a message store over the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append assigns the message an id and server-side timestamp, then writes it
// to the log. The caller validates content before calling.
func (s *FileStore) Append(msg Message) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return Message{}, err
	}

	msg.ID = uuid.New()
	msg.CreatedAt = time.Now().UTC()
	records = append(records, msg)

	if err := s.writeAll(records); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// ListForBooking returns all messages for a booking, newest first.
func (s *FileStore) ListForBooking(bookingID string) ([]Message, error) {
	return s.list(func(m *Message) bool { return m.BookingID == bookingID })
}

// ListForCustomer returns all messages authored by a customer, newest first.
func (s *FileStore) ListForCustomer(customerID uuid.UUID) ([]Message, error) {
	return s.list(func(m *Message) bool { return m.CustomerID == customerID })
}

func (s *FileStore) list(match func(*Message) bool) ([]Message, error) {
	s.mu.Lock()
	records, err := s.readAll()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	results := make([]Message, 0, len(records))
	for i := range records {
		if match(&records[i]) {
			results = append(results, records[i])
		}
	}

	// Newest first; id breaks timestamp ties so repeated reads stay stable.
	sort.SliceStable(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID.String() > results[j].ID.String()
	})

	return results, nil
}

func (s *FileStore) readAll() ([]Message, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Message{}, nil
		}
		return nil, fmt.Errorf("read message log: %w", err)
	}

	if len(data) == 0 {
		return []Message{}, nil
	}

	var records []Message
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode message log: %w", err)
	}
	return records, nil
}

func (s *FileStore) writeAll(records []Message) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create message log directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode message log: %w", err)
	}

	// Write to a temp file and rename so a crash mid-write cannot truncate
	// the log.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write message log: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace message log: %w", err)
	}
	return nil
}
