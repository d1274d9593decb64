package scene

import (
	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/runtime"
	"github.com/odvcencio/stagehand/state"
)

// Presenter applies one-shot platform presentation flags.
// The controller passes the flags through uninterpreted.
type Presenter interface {
	ApplyPresentation(opts backend.PresentationOptions)
}

// FrameSource delivers frame ticks from the rendering runtime.
// The runtime App's frame bus satisfies this.
type FrameSource interface {
	SubscribeFrames(fn func(runtime.FrameTick)) func()
}

// Options configures controller attachment.
type Options struct {
	// Presentation is applied once, at attach time.
	Presentation backend.PresentationOptions
}

type phase int

const (
	phaseUnattached phase = iota
	phaseAttached
	phaseDetached
)

// Controller routes control-state changes and frame ticks into stage
// mutations. It moves through three phases: unattached (fresh),
// attached (subscriptions live), detached (terminal; build a new
// controller to reattach).
//
// All subscriptions created at attach form one release group and are
// torn down together at detach. Callbacks guard on the attached phase
// rather than owning the controller, so a notification that races a
// detach is silently skipped. Handlers must not write the field they
// react to; that would recurse through the synchronous notification
// path.
type Controller struct {
	controls  *Controls
	stage     *Stage
	presenter Presenter
	frames    FrameSource
	opts      Options
	subs      state.Subscriptions
	phase     phase
}

// NewController creates an unattached controller.
// controls and frames are required: constructing a controller without
// its state store or frame source is an integration bug, and the
// panic here surfaces it at the construction site instead of as a
// silent dead controller.
func NewController(controls *Controls, stage *Stage, frames FrameSource, presenter Presenter, opts Options) *Controller {
	if controls == nil {
		panic("scene: controller requires a non-nil Controls")
	}
	if frames == nil {
		panic("scene: controller requires a non-nil FrameSource")
	}
	if stage == nil {
		stage = NewStage(80, 24)
	}
	return &Controller{
		controls:  controls,
		stage:     stage,
		presenter: presenter,
		frames:    frames,
		opts:      opts,
	}
}

// Stage returns the stage the controller mutates.
func (c *Controller) Stage() *Stage {
	return c.stage
}

// Attached reports whether the controller is live.
func (c *Controller) Attached() bool {
	return c != nil && c.phase == phaseAttached
}

// Attach applies presentation setup and registers all subscriptions.
// Calling Attach on an already-attached or detached controller is a
// no-op.
func (c *Controller) Attach() {
	if c == nil || c.phase != phaseUnattached {
		return
	}
	c.phase = phaseAttached

	if c.presenter != nil {
		c.presenter.ApplyPresentation(c.opts.Presentation)
	}

	// Seed stage properties from current control values, then track
	// changes. Frame ticks drive the simulation itself.
	c.stage.SetDrift(c.controls.Drift.Get())
	c.stage.SetIntensity(c.controls.Intensity.Get())
	c.stage.SetCaption(c.controls.Caption.Get())

	c.subs.Add(c.frames.SubscribeFrames(c.onFrame))
	c.subs.Subscribe(c.controls.Drift, c.onDriftChanged)
	c.subs.Subscribe(c.controls.Intensity, c.onIntensityChanged)
	c.subs.Subscribe(c.controls.Caption, c.onCaptionChanged)
	c.subs.Add(c.controls.Actions.Subscribe(c.processAction))
}

// Detach cancels every subscription in the release group.
// Idempotent; a detached controller never reattaches.
func (c *Controller) Detach() {
	if c == nil || c.phase != phaseAttached {
		return
	}
	c.phase = phaseDetached
	c.subs.Clear()
}

func (c *Controller) onFrame(tick runtime.FrameTick) {
	if !c.Attached() {
		return
	}
	c.stage.Step(tick.Delta)
}

func (c *Controller) onDriftChanged() {
	if !c.Attached() {
		return
	}
	c.stage.SetDrift(c.controls.Drift.Get())
}

func (c *Controller) onIntensityChanged() {
	if !c.Attached() {
		return
	}
	c.stage.SetIntensity(c.controls.Intensity.Get())
}

func (c *Controller) onCaptionChanged() {
	if !c.Attached() {
		return
	}
	c.stage.SetCaption(c.controls.Caption.Get())
}

// processAction routes an action to its handler.
// Unknown variants fall through the default branch and are dropped.
func (c *Controller) processAction(action Action) {
	if !c.Attached() {
		return
	}
	switch action {
	case ActionPulse:
		c.handlePulse()
	case ActionScatter:
		c.handleScatter()
	default:
	}
}

func (c *Controller) handlePulse() {
	c.stage.Pulse()
}

func (c *Controller) handleScatter() {
	c.stage.Scatter()
}
