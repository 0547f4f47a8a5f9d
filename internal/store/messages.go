package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arundev/portfolio-api/internal/entity"
)

// ErrAppendFailed is the sentinel returned when a submission could not be
// persisted. Callers check against it and may proceed best-effort; the
// underlying cause is carried in the wrapped error for logging only.
var ErrAppendFailed = errors.New("contact message append failed")

// Store persists accepted contact submissions as an append-only log.
type Store interface {
	Append(ctx context.Context, msg entity.ContactMessage) (string, error)
	List(ctx context.Context) ([]entity.ContactMessage, error)
	Count(ctx context.Context) (int, error)
}

// FileStore keeps the log as a single JSON array file. Every append is a
// whole-file read-modify-write, so a mutex serializes all access; without
// it two concurrent appends could each write back a list missing the
// other's record.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore wires a file-backed store at the given path. The file is
// created on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append assigns a fresh id and capture timestamp, then writes the message
// to the end of the log. On any persistence failure it returns an error
// wrapping ErrAppendFailed and leaves the existing log untouched.
func (s *FileStore) Append(ctx context.Context, msg entity.ContactMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAppendFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages := s.load()

	msg.ID = uuid.NewString()
	msg.Timestamp = time.Now()
	messages = append(messages, msg)

	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAppendFailed, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAppendFailed, err)
	}

	return msg.ID, nil
}

// List returns every stored message in append order.
func (s *FileStore) List(ctx context.Context) ([]entity.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// Count reports the number of stored messages.
func (s *FileStore) Count(ctx context.Context) (int, error) {
	messages, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(messages), nil
}

// load reads the current log. A missing file means an empty log. An
// unreadable or undecodable file is also treated as empty, but it is first
// moved aside so existing records are never silently overwritten by the
// next append. Callers must hold s.mu.
func (s *FileStore) load() []entity.ContactMessage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		log.Printf("contact store unreadable, starting fresh: %v", err)
		s.quarantine()
		return nil
	}

	var messages []entity.ContactMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		log.Printf("contact store corrupt, starting fresh: %v", err)
		s.quarantine()
		return nil
	}
	return messages
}

func (s *FileStore) quarantine() {
	aside := s.path + ".corrupt-" + time.Now().Format("20060102T150405")
	if err := os.Rename(s.path, aside); err != nil {
		log.Printf("failed to move corrupt contact store aside: %v", err)
	}
}
