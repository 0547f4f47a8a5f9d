package service

import (
	"context"
	"log"

	"github.com/arundev/portfolio-api/internal/dto"
	"github.com/arundev/portfolio-api/internal/entity"
	"github.com/arundev/portfolio-api/internal/store"
)

const thankYouMessage = "Thank you for your message! I'll get back to you soon."

// Notifier delivers a best-effort notification for an accepted submission.
type Notifier interface {
	Notify(ctx context.Context, msg entity.ContactMessage) error
}

// TaskQueue hands work to a background executor.
type TaskQueue interface {
	Enqueue(name string, fn func(context.Context) error) bool
}

// ContactService runs the submission pipeline: validate, persist, schedule
// the notification, acknowledge.
type ContactService struct {
	store    store.Store
	notifier Notifier
	tasks    TaskQueue
}

// NewContactService wires the pipeline. Notifier may be nil, in which case
// submissions are accepted and stored without notification.
func NewContactService(st store.Store, notifier Notifier, tasks TaskQueue) *ContactService {
	return &ContactService{store: st, notifier: notifier, tasks: tasks}
}

// Submit validates and persists a submission. It returns the acknowledgment
// and a schedule callback; the caller invokes the callback once the response
// has been written, which hands the notification to the background queue.
//
// A persistence failure does not fail the submission: the acknowledgment
// carries a null id and saved=false, and the failure is logged. Validation
// failure returns a *ValidationError before any side effect.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, func(), error) {
	if err := ValidateContact(req); err != nil {
		return dto.ContactResponse{}, nil, err
	}

	msg := entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	id, err := s.store.Append(ctx, msg)
	saved := err == nil
	var idPtr *string
	if saved {
		msg.ID = id
		idPtr = &id
	} else {
		log.Printf("contact message not persisted: %v", err)
	}

	resp := dto.ContactResponse{
		Success: true,
		Message: thankYouMessage,
		ID:      idPtr,
		Saved:   saved,
	}
	return resp, s.scheduleNotify(msg), nil
}

func (s *ContactService) scheduleNotify(msg entity.ContactMessage) func() {
	if s.notifier == nil || s.tasks == nil {
		return func() {}
	}
	return func() {
		ok := s.tasks.Enqueue("contact-notify", func(ctx context.Context) error {
			return s.notifier.Notify(ctx, msg)
		})
		if !ok {
			log.Printf("contact notification dropped: task queue full")
		}
	}
}
