package runtime

import (
	"time"

	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/state"
)

// Services is the handle widgets and scene views get at bind time.
// It is a small value wrapping the app, exposing only scheduling,
// invalidation, frames, presentation pass-through, and message
// posting; every method is safe on the zero value so unbound widgets
// degrade to no-ops instead of nil dereferences.
type Services struct {
	app *App
}

// Services returns a service handle for the app.
func (a *App) Services() Services {
	return Services{app: a}
}

func (s Services) isZero() bool {
	return s.app == nil
}

// Scheduler returns the scheduler for state subscription callbacks.
func (s Services) Scheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.StateScheduler()
}

// InvalidateScheduler returns the scheduler that repaints after each
// callback.
func (s Services) InvalidateScheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.InvalidateScheduler()
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	if s.app == nil {
		return
	}
	s.app.Invalidate()
}

// Frames returns the app frame bus. Scene views subscribe here to
// repaint on every tick.
func (s Services) Frames() *FrameBus {
	if s.app == nil {
		return nil
	}
	return s.app.Frames()
}

// ApplyPresentation forwards presentation flags to the backend.
// Scene controllers call this once at attach.
func (s Services) ApplyPresentation(opts backend.PresentationOptions) {
	if s.app == nil {
		return
	}
	s.app.ApplyPresentation(opts)
}

// Post sends a message into the app loop, reporting whether it fit.
func (s Services) Post(msg Message) bool {
	if s.app == nil {
		return false
	}
	return s.app.tryPost(msg)
}

// Spawn starts an effect under the app task context.
func (s Services) Spawn(effect Effect) {
	if s.app == nil {
		return
	}
	s.app.Spawn(effect)
}

// After schedules a one-shot delayed message.
func (s Services) After(delay time.Duration, msg Message) {
	if s.app == nil {
		return
	}
	s.app.After(delay, msg)
}

// Every schedules a recurring message.
func (s Services) Every(interval time.Duration, fn func(time.Time) Message) {
	if s.app == nil {
		return
	}
	s.app.Every(interval, fn)
}
