package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/arundev/portfolio-api/internal/entity"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.json")
	return NewFileStore(path), path
}

func sampleMessage() entity.ContactMessage {
	return entity.ContactMessage{
		Name:    "Jordan Example",
		Email:   "jordan@example.com",
		Subject: "Project inquiry",
		Message: "I would like to talk about a project.",
	}
}

func TestAppendRoundTrip(t *testing.T) {
	s, path := newTestStore(t)
	before := time.Now()

	id, err := s.Append(context.Background(), sampleMessage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}

	messages, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	last := messages[len(messages)-1]
	if last.Name != "Jordan Example" || last.Email != "jordan@example.com" ||
		last.Subject != "Project inquiry" || last.Message != "I would like to talk about a project." {
		t.Fatalf("stored fields do not match input: %+v", last)
	}
	if last.Timestamp.Before(before) {
		t.Fatalf("timestamp %s predates submission time %s", last.Timestamp, before)
	}

	// the on-disk layout is a plain JSON array of records
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("store file is not a JSON array: %v", err)
	}
	for _, key := range []string{"id", "name", "email", "subject", "message", "timestamp"} {
		if _, ok := raw[0][key]; !ok {
			t.Fatalf("store record missing %q: %v", key, raw[0])
		}
	}
}

func TestAppendAssignsDistinctIDs(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		id, err := s.Append(context.Background(), sampleMessage())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestConcurrentAppends(t *testing.T) {
	s, _ := newTestStore(t)

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Append(context.Background(), sampleMessage())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected append error: %v", err)
		}
	}

	messages, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != n {
		t.Fatalf("expected %d messages after concurrent appends, got %d", n, len(messages))
	}

	ids := make(map[string]struct{}, n)
	for _, m := range messages {
		ids[m.ID] = struct{}{}
	}
	if len(ids) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(ids))
	}
}

func TestCorruptFileStartsFresh(t *testing.T) {
	s, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	id, err := s.Append(context.Background(), sampleMessage())
	if err != nil {
		t.Fatalf("expected append to succeed over corrupt file, got %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}

	count, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected fresh log with 1 message, got %d", count)
	}

	// the corrupt file must have been moved aside, not destroyed
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	quarantined := false
	for _, e := range entries {
		if strings.Contains(e.Name(), ".corrupt-") {
			quarantined = true
		}
	}
	if !quarantined {
		t.Fatalf("expected corrupt file to be quarantined, dir: %v", entries)
	}
}

func TestMissingFileIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	messages, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty log, got %d messages", len(messages))
	}
}

func TestAppendFailureIsSentinel(t *testing.T) {
	// a missing parent directory makes the write fail
	s := NewFileStore(filepath.Join(t.TempDir(), "missing", "messages.json"))

	_, err := s.Append(context.Background(), sampleMessage())
	if !errors.Is(err, ErrAppendFailed) {
		t.Fatalf("expected ErrAppendFailed, got %v", err)
	}
}
