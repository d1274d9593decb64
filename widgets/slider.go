package widgets

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/runtime"
	"github.com/odvcencio/stagehand/state"
)

// Slider is a horizontal slider bound two-way to a float signal.
// The signal owns the domain: writes go through its normalization, so
// the slider never has to clamp on its own.
type Slider struct {
	Component

	label      string
	value      state.Writable[float64]
	min, max   float64
	step       float64
	style      backend.Style
	focusStyle backend.Style
}

// NewSlider creates a slider bound to a float signal over [min, max].
func NewSlider(label string, value state.Writable[float64], min, max float64) *Slider {
	if max <= min {
		max = min + 1
	}
	return &Slider{
		label:      label,
		value:      value,
		min:        min,
		max:        max,
		step:       (max - min) / 20,
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Reverse(true),
	}
}

// SetStep sets the keyboard adjustment step.
func (s *Slider) SetStep(step float64) {
	if step > 0 {
		s.step = step
	}
}

// Value returns the bound value.
func (s *Slider) Value() float64 {
	if s.value == nil {
		return s.min
	}
	return s.value.Get()
}

// CanFocus returns true.
func (s *Slider) CanFocus() bool {
	return true
}

// Mount subscribes to external value changes.
func (s *Slider) Mount() {
	if s.value == nil {
		return
	}
	s.Observe(s.value, s.Invalidate)
}

// Unmount releases subscriptions.
func (s *Slider) Unmount() {
	s.Subs.Clear()
}

// Measure returns the desired size.
func (s *Slider) Measure(constraints runtime.Constraints) runtime.Size {
	return runtime.Size{
		Width:  constraints.MaxWidth,
		Height: 1,
	}
}

// Render draws the label, track, and value readout.
func (s *Slider) Render(ctx runtime.RenderContext) {
	bounds := s.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	style := s.style
	if s.IsFocused() {
		style = s.focusStyle
	}

	readout := fmt.Sprintf(" %5.1f", s.Value())
	prefix := s.label + " "
	prefixWidth := runewidth.StringWidth(prefix)
	trackWidth := bounds.Width - prefixWidth - runewidth.StringWidth(readout)
	if trackWidth < 3 {
		ctx.Buffer.SetString(bounds.X, bounds.Y, truncateString(prefix+readout, bounds.Width), style)
		return
	}

	frac := (s.Value() - s.min) / (s.max - s.min)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	knob := int(frac * float64(trackWidth-1))

	track := make([]rune, trackWidth)
	for i := range track {
		if i == knob {
			track[i] = '█'
		} else {
			track[i] = '─'
		}
	}

	ctx.Buffer.SetString(bounds.X, bounds.Y, prefix, style)
	ctx.Buffer.SetString(bounds.X+prefixWidth, bounds.Y, string(track), style)
	ctx.Buffer.SetString(bounds.X+prefixWidth+trackWidth, bounds.Y, readout, style)
}

// HandleMessage adjusts the value with arrows, Home/End, or the wheel.
func (s *Slider) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if s.value == nil {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.KeyMsg:
		switch m.Key {
		case backend.KeyLeft:
			s.adjust(-s.step)
			return runtime.Handled()
		case backend.KeyRight:
			s.adjust(s.step)
			return runtime.Handled()
		case backend.KeyHome:
			s.set(s.min)
			return runtime.Handled()
		case backend.KeyEnd:
			s.set(s.max)
			return runtime.Handled()
		}
	case runtime.MouseMsg:
		switch m.Button {
		case backend.MouseWheelUp:
			s.adjust(s.step)
			return runtime.Handled()
		case backend.MouseWheelDown:
			s.adjust(-s.step)
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (s *Slider) adjust(delta float64) {
	s.value.Update(func(v float64) float64 { return v + delta })
	s.Invalidate()
}

func (s *Slider) set(v float64) {
	s.value.Set(v)
	s.Invalidate()
}
