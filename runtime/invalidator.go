package runtime

import "sync/atomic"

// Invalidator coalesces repaint requests into a single InvalidateMsg.
// Frame callbacks, signal subscriptions, and widgets can all request
// a redraw within the same beat; only the first request posts a
// message, the rest ride along until the loop consumes it and arms
// the invalidator again.
type Invalidator struct {
	post     func(Message) bool
	inFlight atomic.Bool
}

// NewInvalidator creates an invalidator wired to a post function.
func NewInvalidator(post func(Message) bool) *Invalidator {
	return &Invalidator{post: post}
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i == nil || i.post == nil {
		return
	}
	if !i.inFlight.CompareAndSwap(false, true) {
		return
	}
	if !i.post(InvalidateMsg{}) {
		// Message buffer full or loop stopped; allow a retry.
		i.inFlight.Store(false)
	}
}

// Schedule runs fn on the caller and requests a render pass.
// This is the invalidate-scheduler path: state callbacks routed here
// repaint without each widget calling Invalidate itself.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

// resetPending re-arms the invalidator once the loop has consumed
// the in-flight InvalidateMsg.
func (i *Invalidator) resetPending() {
	if i == nil {
		return
	}
	i.inFlight.Store(false)
}
