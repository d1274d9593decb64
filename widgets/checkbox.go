package widgets

import (
	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/runtime"
	"github.com/odvcencio/stagehand/state"
)

// Checkbox is a toggle bound two-way to a boolean signal.
// User input writes through to the signal; external writes to the
// signal re-render the checkbox while mounted.
type Checkbox struct {
	Component

	label      string
	value      state.Writable[bool]
	style      backend.Style
	focusStyle backend.Style
}

// NewCheckbox creates a checkbox bound to a boolean signal.
func NewCheckbox(label string, value state.Writable[bool]) *Checkbox {
	return &Checkbox{
		label:      label,
		value:      value,
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Reverse(true),
	}
}

// Checked returns the bound value.
func (c *Checkbox) Checked() bool {
	if c.value == nil {
		return false
	}
	return c.value.Get()
}

// CanFocus returns true.
func (c *Checkbox) CanFocus() bool {
	return true
}

// Mount subscribes to external value changes.
func (c *Checkbox) Mount() {
	if c.value == nil {
		return
	}
	c.Observe(c.value, c.Invalidate)
}

// Unmount releases subscriptions.
func (c *Checkbox) Unmount() {
	c.Subs.Clear()
}

// Measure returns the desired size.
func (c *Checkbox) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  len(c.label) + 4,
		Height: 1,
	})
}

// Render draws the checkbox.
func (c *Checkbox) Render(ctx runtime.RenderContext) {
	bounds := c.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	style := c.style
	if c.IsFocused() {
		style = c.focusStyle
	}
	marker := "[ ]"
	if c.Checked() {
		marker = "[x]"
	}
	text := truncateString(marker+" "+c.label, bounds.Width)
	ctx.Buffer.SetString(bounds.X, bounds.Y, text, style)
}

// HandleMessage toggles the value on Space, Enter, or click.
func (c *Checkbox) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if c.value == nil {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.KeyMsg:
		if m.Key == backend.KeySpace || m.Key == backend.KeyEnter {
			c.toggle()
			return runtime.Handled()
		}
	case runtime.MouseMsg:
		if m.Button == backend.MouseLeft && m.Action == backend.MousePress {
			c.toggle()
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (c *Checkbox) toggle() {
	c.value.Update(func(v bool) bool { return !v })
	c.Invalidate()
}
