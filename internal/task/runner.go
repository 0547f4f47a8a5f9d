package task

import (
	"context"
	"log"
)

type job struct {
	name string
	fn   func(context.Context) error
}

// Runner executes queued jobs one at a time on a background goroutine.
// Jobs run after the enqueueing request has finished with them; a failing
// or panicking job is logged and never reaches the request path.
type Runner struct {
	jobs chan job
	done chan struct{}
}

// NewRunner starts a runner with the given queue capacity.
func NewRunner(size int) *Runner {
	if size <= 0 {
		size = 64
	}
	r := &Runner{
		jobs: make(chan job, size),
		done: make(chan struct{}),
	}
	go r.loop()
	return r
}

// Enqueue schedules fn for background execution. It returns false when the
// queue is full; the job is dropped in that case. Must not be called after
// Close.
func (r *Runner) Enqueue(name string, fn func(context.Context) error) bool {
	select {
	case r.jobs <- job{name: name, fn: fn}:
		return true
	default:
		return false
	}
}

// Close stops intake and waits for queued jobs to drain until ctx expires.
func (r *Runner) Close(ctx context.Context) error {
	close(r.jobs)
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) loop() {
	defer close(r.done)
	for j := range r.jobs {
		r.run(j)
	}
}

func (r *Runner) run(j job) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("task=%s panic=%v", j.name, rec)
		}
	}()
	if err := j.fn(context.Background()); err != nil {
		log.Printf("task=%s error=%v", j.name, err)
	}
}
