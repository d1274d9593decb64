package widgets

import (
	"github.com/odvcencio/stagehand/runtime"
	"github.com/odvcencio/stagehand/state"
)

// Component is the embeddable half of a bound widget: Base plus the
// app services it was bound with and the release group holding its
// subscriptions. Bound widgets observe their signals through the
// group so a single Clear at unbind tears everything down.
type Component struct {
	Base
	Services runtime.Services
	Subs     state.Subscriptions
}

// Bind stores the service handle and routes the release group's
// callbacks through the app's state scheduler, so subscription
// callbacks land on the loop rather than the notifying goroutine.
func (c *Component) Bind(services runtime.Services) {
	c.Services = services
	c.Subs.SetScheduler(services.Scheduler())
}

// Unbind clears the release group and drops the service handle.
func (c *Component) Unbind() {
	c.Subs.Clear()
	c.Services = runtime.Services{}
}

// Observe subscribes fn to sub inside the release group.
func (c *Component) Observe(sub state.Subscribable, fn func()) {
	c.Subs.Observe(sub, fn)
}

// Invalidate requests a render pass through the bound services.
func (c *Component) Invalidate() {
	c.Services.Invalidate()
}
