package scene

import (
	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/runtime"
	"github.com/odvcencio/stagehand/state"
)

// View renders a stage and manages a controller's lifecycle.
// A fresh controller is built on every mount, since a detached
// controller never reattaches. The view keeps its own frame
// subscription to repaint while the controller steps the simulation.
type View struct {
	controls *Controls
	opts     Options
	style    backend.Style

	services runtime.Services
	subs     state.Subscriptions
	ctrl     *Controller
	bounds   runtime.Rect
}

// NewView creates a stage view for the given controls.
func NewView(controls *Controls, opts Options) *View {
	if controls == nil {
		panic("scene: view requires a non-nil Controls")
	}
	return &View{
		controls: controls,
		opts:     opts,
		style:    backend.DefaultStyle(),
	}
}

// Controller returns the live controller, nil while unmounted.
func (v *View) Controller() *Controller {
	return v.ctrl
}

// Bind attaches app services.
func (v *View) Bind(services runtime.Services) {
	v.services = services
}

// Unbind releases app services.
func (v *View) Unbind() {
	v.subs.Clear()
	v.services = runtime.Services{}
}

// Mount builds and attaches a fresh controller.
func (v *View) Mount() {
	frames := v.services.Frames()
	if frames == nil {
		return
	}
	stage := NewStage(v.bounds.Width, v.bounds.Height)
	v.ctrl = NewController(v.controls, stage, frames, v.services, v.opts)
	v.ctrl.Attach()

	services := v.services
	v.subs.Add(frames.SubscribeFrames(func(runtime.FrameTick) {
		services.Invalidate()
	}))
}

// Unmount detaches the controller.
func (v *View) Unmount() {
	v.subs.Clear()
	if v.ctrl != nil {
		v.ctrl.Detach()
		v.ctrl = nil
	}
}

// Measure fills the available space.
func (v *View) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

// Layout stores bounds and resizes the stage.
func (v *View) Layout(bounds runtime.Rect) {
	v.bounds = bounds
	if v.ctrl != nil {
		v.ctrl.Stage().Resize(bounds.Width, bounds.Height)
	}
}

// Bounds returns the view bounds.
func (v *View) Bounds() runtime.Rect {
	return v.bounds
}

// HandleMessage ignores input; the view is display-only.
func (v *View) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// Render draws the caption and live particles.
func (v *View) Render(ctx runtime.RenderContext) {
	if ctx.Buffer == nil || v.bounds.Width <= 0 || v.bounds.Height <= 0 {
		return
	}
	ctx.Buffer.Fill(v.bounds, ' ', v.style)
	if v.ctrl == nil {
		return
	}
	stage := v.ctrl.Stage()

	if caption := stage.Caption(); caption != "" {
		ctx.Buffer.SetString(v.bounds.X+1, v.bounds.Y, caption, v.style.Bold(true))
	}
	for _, p := range stage.Particles() {
		x := v.bounds.X + int(p.X)
		y := v.bounds.Y + int(p.Y)
		if !v.bounds.Contains(x, y) {
			continue
		}
		ctx.Buffer.Set(x, y, p.Glyph, v.style)
	}
}
