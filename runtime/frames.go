package runtime

import (
	"time"

	"github.com/odvcencio/stagehand/state"
)

// FrameTick is one beat of the app's frame clock.
// Delta is the time since the previous tick; zero on the first frame.
type FrameTick struct {
	Time  time.Time
	Delta time.Duration
}

// FrameBus publishes frame ticks to subscribers.
// Delivery follows bus semantics: synchronous, in registration order,
// never buffered.
type FrameBus struct {
	bus  *state.Bus[FrameTick]
	last time.Time
}

// NewFrameBus creates an empty frame bus.
func NewFrameBus() *FrameBus {
	return &FrameBus{bus: state.NewBus[FrameTick]()}
}

// Publish emits a tick for the given instant.
func (f *FrameBus) Publish(now time.Time) {
	if f == nil {
		return
	}
	tick := FrameTick{Time: now}
	if !f.last.IsZero() {
		tick.Delta = now.Sub(f.last)
	}
	f.last = now
	f.bus.Emit(tick)
}

// SubscribeFrames registers a listener for future ticks.
func (f *FrameBus) SubscribeFrames(fn func(FrameTick)) func() {
	if f == nil {
		return func() {}
	}
	return f.bus.Subscribe(fn)
}

// SubscriberCount returns the number of live frame subscribers.
func (f *FrameBus) SubscriberCount() int {
	if f == nil {
		return 0
	}
	return f.bus.SubscriberCount()
}
