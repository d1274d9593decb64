package widgets

import (
	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/runtime"
	"github.com/odvcencio/stagehand/state"
)

// Input is a single-line text field bound two-way to a string signal.
// Keystrokes write through on every edit; external writes replace the
// text and move the cursor to the end.
type Input struct {
	Component

	value       state.Writable[string]
	text        []rune
	cursorPos   int
	placeholder string
	style       backend.Style
	focusStyle  backend.Style
}

// NewInput creates an input bound to a string signal.
func NewInput(value state.Writable[string]) *Input {
	in := &Input{
		value:      value,
		style:      backend.DefaultStyle(),
		focusStyle: backend.DefaultStyle().Bold(true).Underline(true),
	}
	if value != nil {
		in.text = []rune(value.Get())
		in.cursorPos = len(in.text)
	}
	return in
}

// SetPlaceholder sets the placeholder text shown when empty.
func (i *Input) SetPlaceholder(text string) {
	i.placeholder = text
}

// SetStyle sets the normal style.
func (i *Input) SetStyle(style backend.Style) {
	i.style = style
}

// SetFocusStyle sets the focused style.
func (i *Input) SetFocusStyle(style backend.Style) {
	i.focusStyle = style
}

// Text returns the current text.
func (i *Input) Text() string {
	return string(i.text)
}

// CursorPos returns the cursor position in runes.
func (i *Input) CursorPos() int {
	return i.cursorPos
}

// CanFocus returns true.
func (i *Input) CanFocus() bool {
	return true
}

// Mount subscribes to external value changes.
func (i *Input) Mount() {
	if i.value == nil {
		return
	}
	i.Observe(i.value, i.onValueChanged)
}

// Unmount releases subscriptions.
func (i *Input) Unmount() {
	i.Subs.Clear()
}

func (i *Input) onValueChanged() {
	// The write-through echo can arrive a queue flush later, so a
	// flag around Set is not enough. A value matching the edit
	// buffer is our own echo; only a differing value is external.
	text := i.value.Get()
	if text == string(i.text) {
		return
	}
	i.text = []rune(text)
	i.cursorPos = len(i.text)
	i.Invalidate()
}

// Measure returns the size needed for the input.
func (i *Input) Measure(constraints runtime.Constraints) runtime.Size {
	return runtime.Size{
		Width:  constraints.MaxWidth,
		Height: 1,
	}
}

// Render draws the text or placeholder.
func (i *Input) Render(ctx runtime.RenderContext) {
	bounds := i.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	style := i.style
	text := string(i.text)
	if len(i.text) == 0 && !i.IsFocused() {
		text = i.placeholder
		style = style.Dim(true)
	} else if i.IsFocused() {
		style = i.focusStyle
	}

	ctx.Buffer.Fill(runtime.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: 1}, ' ', style)
	ctx.Buffer.SetString(bounds.X, bounds.Y, truncateString(text, bounds.Width), style)

	if i.IsFocused() && i.cursorPos <= bounds.Width-1 {
		cell := ctx.Buffer.Get(bounds.X+i.cursorPos, bounds.Y)
		r := cell.Rune
		if r == 0 {
			r = ' '
		}
		ctx.Buffer.Set(bounds.X+i.cursorPos, bounds.Y, r, style.Reverse(true))
	}
}

// HandleMessage edits the text.
func (i *Input) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if i.value == nil {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.KeyMsg:
		return i.handleKey(m)
	case runtime.PasteMsg:
		i.insert([]rune(m.Text))
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (i *Input) handleKey(m runtime.KeyMsg) runtime.HandleResult {
	switch m.Key {
	case backend.KeyRune:
		i.insert([]rune{m.Rune})
		return runtime.Handled()
	case backend.KeySpace:
		i.insert([]rune{' '})
		return runtime.Handled()
	case backend.KeyBackspace:
		if i.cursorPos > 0 {
			i.text = append(i.text[:i.cursorPos-1], i.text[i.cursorPos:]...)
			i.cursorPos--
			i.sync()
		}
		return runtime.Handled()
	case backend.KeyDelete:
		if i.cursorPos < len(i.text) {
			i.text = append(i.text[:i.cursorPos], i.text[i.cursorPos+1:]...)
			i.sync()
		}
		return runtime.Handled()
	case backend.KeyLeft:
		if i.cursorPos > 0 {
			i.cursorPos--
			i.Invalidate()
		}
		return runtime.Handled()
	case backend.KeyRight:
		if i.cursorPos < len(i.text) {
			i.cursorPos++
			i.Invalidate()
		}
		return runtime.Handled()
	case backend.KeyHome:
		i.cursorPos = 0
		i.Invalidate()
		return runtime.Handled()
	case backend.KeyEnd:
		i.cursorPos = len(i.text)
		i.Invalidate()
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (i *Input) insert(runes []rune) {
	if len(runes) == 0 {
		return
	}
	text := make([]rune, 0, len(i.text)+len(runes))
	text = append(text, i.text[:i.cursorPos]...)
	text = append(text, runes...)
	text = append(text, i.text[i.cursorPos:]...)
	i.text = text
	i.cursorPos += len(runes)
	i.sync()
}

func (i *Input) sync() {
	i.value.Set(string(i.text))
	i.Invalidate()
}
