package widgets

import (
	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/runtime"
)

// Button fires a callback when activated.
// Activation comes from Enter or Space while focused, or a mouse
// press inside the bounds. The button holds no state of its own; the
// press callback is where discrete events get emitted.
type Button struct {
	FocusableBase

	label      string
	style      backend.Style
	focusStyle backend.Style
	disabled   bool
	onPress    func()
}

// NewButton creates a button with a label.
func NewButton(label string) *Button {
	return &Button{
		label:      label,
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Reverse(true),
	}
}

// OnPress sets the activation callback.
func (b *Button) OnPress(fn func()) {
	b.onPress = fn
}

// SetDisabled updates disabled state.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetStyle sets the normal style.
func (b *Button) SetStyle(style backend.Style) {
	b.style = style
}

// SetFocusStyle sets the focused style.
func (b *Button) SetFocusStyle(style backend.Style) {
	b.focusStyle = style
}

// Measure returns the desired size.
func (b *Button) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  len(b.label) + 4,
		Height: 1,
	})
}

// Render draws the button.
func (b *Button) Render(ctx runtime.RenderContext) {
	bounds := b.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	style := b.style
	if b.IsFocused() {
		style = b.focusStyle
	}
	if b.disabled {
		style = style.Dim(true)
	}
	text := truncateString("[ "+b.label+" ]", bounds.Width)
	ctx.Buffer.SetString(bounds.X, bounds.Y, text, style)
}

// HandleMessage activates the button on Enter, Space, or click.
func (b *Button) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if b.disabled {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.KeyMsg:
		if m.Key == backend.KeyEnter || m.Key == backend.KeySpace {
			b.press()
			return runtime.Handled()
		}
	case runtime.MouseMsg:
		if m.Button == backend.MouseLeft && m.Action == backend.MousePress {
			b.press()
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (b *Button) press() {
	if b.onPress != nil {
		b.onPress()
	}
}
