package service

import (
	"context"
	"errors"
	"testing"

	"github.com/arundev/portfolio-api/internal/entity"
)

type stubStore struct {
	appendID  string
	appendErr error
	appends   int
	messages  []entity.ContactMessage
}

func (s *stubStore) Append(ctx context.Context, msg entity.ContactMessage) (string, error) {
	s.appends++
	if s.appendErr != nil {
		return "", s.appendErr
	}
	msg.ID = s.appendID
	s.messages = append(s.messages, msg)
	return s.appendID, nil
}

func (s *stubStore) List(ctx context.Context) ([]entity.ContactMessage, error) {
	return s.messages, nil
}

func (s *stubStore) Count(ctx context.Context) (int, error) {
	return len(s.messages), nil
}

type stubNotifier struct {
	err   error
	calls []entity.ContactMessage
}

func (n *stubNotifier) Notify(ctx context.Context, msg entity.ContactMessage) error {
	n.calls = append(n.calls, msg)
	return n.err
}

// syncQueue runs enqueued jobs immediately so tests observe their effects.
type syncQueue struct {
	full     bool
	enqueued int
}

func (q *syncQueue) Enqueue(name string, fn func(context.Context) error) bool {
	if q.full {
		return false
	}
	q.enqueued++
	_ = fn(context.Background())
	return true
}

func TestSubmitHappyPath(t *testing.T) {
	st := &stubStore{appendID: "msg-1"}
	notifier := &stubNotifier{}
	queue := &syncQueue{}
	svc := NewContactService(st, notifier, queue)

	resp, schedule, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || !resp.Saved {
		t.Fatalf("expected successful saved response, got %+v", resp)
	}
	if resp.ID == nil || *resp.ID != "msg-1" {
		t.Fatalf("expected id msg-1, got %v", resp.ID)
	}
	if resp.Message == "" {
		t.Fatalf("expected a thank-you message")
	}

	// nothing notified until the response has been written
	if len(notifier.calls) != 0 {
		t.Fatalf("notification ran before schedule callback")
	}
	schedule()
	if len(notifier.calls) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.calls))
	}
	if notifier.calls[0].ID != "msg-1" || notifier.calls[0].Email != "jordan@example.com" {
		t.Fatalf("unexpected notified message: %+v", notifier.calls[0])
	}
}

func TestSubmitValidationFailureHasNoSideEffects(t *testing.T) {
	st := &stubStore{appendID: "msg-1"}
	notifier := &stubNotifier{}
	queue := &syncQueue{}
	svc := NewContactService(st, notifier, queue)

	req := validSubmission()
	req.Message = "short"

	_, schedule, err := svc.Submit(context.Background(), req)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if schedule != nil {
		t.Fatalf("expected no schedule callback on validation failure")
	}
	if st.appends != 0 {
		t.Fatalf("expected no append, got %d", st.appends)
	}
	if queue.enqueued != 0 || len(notifier.calls) != 0 {
		t.Fatalf("expected no notification activity")
	}
}

func TestSubmitPersistenceFailureStillSucceeds(t *testing.T) {
	st := &stubStore{appendErr: errors.New("disk full")}
	notifier := &stubNotifier{}
	queue := &syncQueue{}
	svc := NewContactService(st, notifier, queue)

	resp, schedule, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("expected success despite persistence failure, got %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success response, got %+v", resp)
	}
	if resp.ID != nil || resp.Saved {
		t.Fatalf("expected null id and saved=false, got %+v", resp)
	}

	// notification still goes out for the unsaved message
	schedule()
	if len(notifier.calls) != 1 {
		t.Fatalf("expected notification despite persistence failure")
	}
}

func TestSubmitNotificationFailureIsInvisible(t *testing.T) {
	st := &stubStore{appendID: "msg-2"}
	notifier := &stubNotifier{err: errors.New("relay down")}
	queue := &syncQueue{}
	svc := NewContactService(st, notifier, queue)

	resp, schedule, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	schedule()

	// the acknowledgment produced before the notification ran is unaffected
	if !resp.Success || !resp.Saved || resp.ID == nil {
		t.Fatalf("response altered by notification failure: %+v", resp)
	}
}

func TestSubmitFullQueueDropsNotification(t *testing.T) {
	st := &stubStore{appendID: "msg-3"}
	notifier := &stubNotifier{}
	queue := &syncQueue{full: true}
	svc := NewContactService(st, notifier, queue)

	resp, schedule, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	schedule()

	if len(notifier.calls) != 0 {
		t.Fatalf("expected dropped notification")
	}
	if !resp.Success || !resp.Saved {
		t.Fatalf("expected submission unaffected by full queue: %+v", resp)
	}
}

func TestSubmitWithoutNotifier(t *testing.T) {
	st := &stubStore{appendID: "msg-4"}
	svc := NewContactService(st, nil, nil)

	resp, schedule, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule == nil {
		t.Fatalf("expected a no-op schedule callback")
	}
	schedule()
	if !resp.Success || !resp.Saved {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
