// Package state provides minimal reactive primitives for terminal UIs.
package state

import (
	"cmp"
	"sync"
)

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// NormalizeFunc maps a candidate value into the signal's domain.
type NormalizeFunc[T any] func(T) T

type subscriber struct {
	id        int
	fn        func()
	scheduler Scheduler
}

// Signal holds a value and notifies subscribers on change.
// Subscribers run synchronously, in registration order, before Set returns;
// a panicking subscriber is recovered so later subscribers still run.
type Signal[T any] struct {
	mu        sync.Mutex
	value     T
	subs      []subscriber
	next      int
	equal     EqualFunc[T]
	normalize NormalizeFunc[T]
}

// NewSignal creates a new signal with an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Clamp returns a normalize func restricting values to [lo, hi].
func Clamp[T cmp.Ordered](lo, hi T) NormalizeFunc[T] {
	return func(v T) T {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
}

// NewClamped creates a float signal whose values are clamped to [lo, hi].
func NewClamped(initial, lo, hi float64) *Signal[float64] {
	clamp := Clamp(lo, hi)
	s := NewSignal(clamp(initial))
	s.SetEqualFunc(EqualComparable[float64])
	s.SetNormalizeFunc(clamp)
	return s
}

// SetEqualFunc configures the equality check used to suppress redundant updates.
func (s *Signal[T]) SetEqualFunc(fn EqualFunc[T]) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
}

// SetNormalizeFunc configures domain normalization for incoming values.
// Normalization runs before the equality check and before storage, so
// subscribers never observe a value outside the signal's domain.
func (s *Signal[T]) SetNormalizeFunc(fn NormalizeFunc[T]) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.normalize = fn
	s.mu.Unlock()
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	if s == nil {
		var zero T
		return zero
	}
	s.mu.Lock()
	value := s.value
	s.mu.Unlock()
	return value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	if s.normalize != nil {
		value = s.normalize(value)
	}
	if s.equal != nil && s.equal(s.value, value) {
		s.mu.Unlock()
		return false
	}
	s.value = value
	subs := s.copySubscribersLocked()
	s.mu.Unlock()

	notify(subs)
	return true
}

// Update replaces the value using fn.
// fn runs outside the signal lock; Update is not atomic across goroutines.
func (s *Signal[T]) Update(fn func(T) T) bool {
	if s == nil || fn == nil {
		return false
	}
	current := s.Get()
	next := fn(current)
	return s.Set(next)
}

// Subscribe registers a listener for change notifications.
func (s *Signal[T]) Subscribe(fn func()) func() {
	return s.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
// If scheduler is nil, callbacks run synchronously.
func (s *Signal[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs = append(s.subs, subscriber{id: id, fn: fn, scheduler: scheduler})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.subs = removeSubscriber(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Signal[T]) copySubscribersLocked() []subscriber {
	if len(s.subs) == 0 {
		return nil
	}
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	return subs
}

func removeSubscriber(subs []subscriber, id int) []subscriber {
	for i, sub := range subs {
		if sub.id == id {
			return append(subs[:i], subs[i+1:]...)
		}
	}
	return subs
}

func notify(subs []subscriber) {
	for _, sub := range subs {
		if sub.fn == nil {
			continue
		}
		if sub.scheduler == nil {
			invoke(sub.fn)
			continue
		}
		fn := sub.fn
		sub.scheduler.Schedule(func() {
			invoke(fn)
		})
	}
}

// invoke isolates a panicking subscriber so the rest of the
// notification round still runs.
func invoke(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
