package state

import "sync"

// Scheduler decides where a subscription callback runs. A nil
// scheduler means synchronous delivery on the notifying goroutine;
// the runtime hands widgets a queue-backed scheduler so their
// callbacks land on the app loop instead.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(func())

// Schedule dispatches fn through the wrapped function.
func (f SchedulerFunc) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

type directScheduler struct{}

func (directScheduler) Schedule(fn func()) {
	if fn != nil {
		fn()
	}
}

// DirectScheduler runs callbacks immediately on the caller.
// Same delivery as a nil scheduler, as an explicit value.
var DirectScheduler Scheduler = directScheduler{}

// AsyncScheduler runs each callback on its own goroutine. Delivery
// order is not preserved across callbacks; use it only where that is
// acceptable.
type AsyncScheduler struct{}

// Schedule dispatches fn asynchronously.
func (AsyncScheduler) Schedule(fn func()) {
	if fn == nil {
		return
	}
	go fn()
}

// Queue batches callbacks until someone flushes it. The runtime
// posts a wake-up message when the queue goes non-empty and flushes
// on the loop, so queued subscription callbacks all run between
// messages rather than mid-notification.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues a callback for the next flush.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Len returns the number of callbacks waiting to be flushed.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs the queued callbacks in enqueue order and returns how
// many ran. Callbacks enqueued during a flush wait for the next one.
func (q *Queue) Flush() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
