package state

import "sync"

type busSubscriber[T any] struct {
	id        int
	fn        func(T)
	scheduler Scheduler
}

// Bus delivers discrete events to current subscribers.
// An event reaches each subscriber at most once, in registration order,
// before Emit returns. Events are never buffered or replayed: emitting
// with zero subscribers drops the event, and a subscriber registered
// after an emission never observes it.
type Bus[T any] struct {
	mu   sync.Mutex
	subs []busSubscriber[T]
	next int
}

// NewBus creates an empty event bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Emit delivers an event to every current subscriber.
func (b *Bus[T]) Emit(event T) {
	if b == nil {
		return
	}
	b.mu.Lock()
	subs := make([]busSubscriber[T], len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, sub := range subs {
		if sub.fn == nil {
			continue
		}
		if sub.scheduler == nil {
			invokeWith(sub.fn, event)
			continue
		}
		fn := sub.fn
		sub.scheduler.Schedule(func() {
			invokeWith(fn, event)
		})
	}
}

// Subscribe registers a listener for future events.
// The returned unsubscribe closure is idempotent.
func (b *Bus[T]) Subscribe(fn func(T)) func() {
	return b.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
// If scheduler is nil, events are delivered synchronously.
func (b *Bus[T]) SubscribeWithScheduler(scheduler Scheduler, fn func(T)) func() {
	if b == nil || fn == nil {
		return func() {}
	}
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs = append(b.subs, busSubscriber[T]{id: id, fn: fn, scheduler: scheduler})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			b.subs = removeBusSubscriber(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// SubscriberCount returns the number of live subscribers.
func (b *Bus[T]) SubscriberCount() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	count := len(b.subs)
	b.mu.Unlock()
	return count
}

func removeBusSubscriber[T any](subs []busSubscriber[T], id int) []busSubscriber[T] {
	for i, sub := range subs {
		if sub.id == id {
			return append(subs[:i], subs[i+1:]...)
		}
	}
	return subs
}

func invokeWith[T any](fn func(T), event T) {
	defer func() {
		_ = recover()
	}()
	fn(event)
}
