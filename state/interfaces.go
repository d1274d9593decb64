package state

// Subscribable is the notification surface shared by signals, buses,
// and computed values: Subscribe registers a change listener and
// returns an idempotent unsubscribe closure. Subscriptions release
// groups and Computed dependencies accept any Subscribable.
type Subscribable interface {
	Subscribe(fn func()) func()
}

// Readable is read access to a reactive value. Widgets that only
// display state, like a bound label, take a Readable so they cannot
// write back.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func()) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Writable extends Readable with mutation. Set reports whether the
// value changed after normalization; Update derives the next value
// from the current one. Two-way widgets bind against Writable.
type Writable[T any] interface {
	Readable[T]
	Set(value T) bool
	Update(fn func(T) T) bool
}
