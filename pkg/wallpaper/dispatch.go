package wallpaper

import (
	"context"
	"sync"
)

// Dispatcher hands work to the single-threaded context that owns UI and registry state.
// Dispatch must not block waiting for that context to run fn.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a plain function, such as fyne.Do, to a Dispatcher.
type DispatcherFunc func(fn func())

// Dispatch calls f(fn).
func (f DispatcherFunc) Dispatch(fn func()) {
	f(fn)
}

// Queue is a single-consumer task queue. Producers never block: when the queue is full
// the task is dropped, which only happens if the consumer is already far behind on ticks.
type Queue struct {
	tasks chan func()

	mu      sync.Mutex
	dropped int
}

// NewQueue creates a queue holding up to size pending tasks.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{tasks: make(chan func(), size)}
}

// Dispatch enqueues fn for the consumer.
func (q *Queue) Dispatch(fn func()) {
	select {
	case q.tasks <- fn:
	default:
		q.mu.Lock()
		q.dropped++
		q.mu.Unlock()
	}
}

// Tasks exposes the queue for consumers with their own select loop.
func (q *Queue) Tasks() <-chan func() {
	return q.tasks
}

// Drain runs queued tasks on the calling goroutine until ctx is done.
func (q *Queue) Drain(ctx context.Context) error {
	for {
		select {
		case fn := <-q.tasks:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunPending runs every task already queued and returns how many ran.
func (q *Queue) RunPending() int {
	n := 0
	for {
		select {
		case fn := <-q.tasks:
			fn()
			n++
		default:
			return n
		}
	}
}

// Dropped returns how many tasks were discarded because the queue was full.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
