package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/runtime"
	"github.com/odvcencio/stagehand/state"
)

// Alignment controls horizontal text placement.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Label is a read-only text widget, optionally bound to a signal.
// Bound labels track their source while mounted; unbound labels show
// static text.
type Label struct {
	Base
	source    state.Readable[string]
	subs      state.Subscriptions
	text      string
	style     backend.Style
	alignment Alignment
	mounted   bool
}

// NewLabel creates a static label.
func NewLabel(text string) *Label {
	return &Label{
		text:  text,
		style: backend.DefaultStyle(),
	}
}

// NewBoundLabel creates a label tracking a string source.
func NewBoundLabel(source state.Readable[string]) *Label {
	label := &Label{
		source: source,
		style:  backend.DefaultStyle(),
	}
	if source != nil {
		label.text = source.Get()
	}
	return label
}

// Text returns the current label text.
func (l *Label) Text() string {
	return l.text
}

// SetText sets static label text.
func (l *Label) SetText(text string) {
	l.text = text
}

// SetStyle sets the label style.
func (l *Label) SetStyle(style backend.Style) {
	l.style = style
}

// SetAlignment sets text alignment.
func (l *Label) SetAlignment(align Alignment) {
	l.alignment = align
}

// Bind attaches app services.
func (l *Label) Bind(services runtime.Services) {
	l.subs.SetScheduler(services.InvalidateScheduler())
}

// Unbind releases app services.
func (l *Label) Unbind() {
	l.subs.Clear()
}

// Mount subscribes to source changes.
func (l *Label) Mount() {
	l.mounted = true
	if l.source == nil {
		return
	}
	l.text = l.source.Get()
	l.subs.Observe(l.source, l.onSourceChanged)
}

// Unmount unsubscribes from source changes.
func (l *Label) Unmount() {
	l.mounted = false
	l.subs.Clear()
}

func (l *Label) onSourceChanged() {
	if !l.mounted || l.source == nil {
		return
	}
	l.text = l.source.Get()
}

// Measure returns the size needed for the label.
func (l *Label) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(l.text),
		Height: 1,
	})
}

// Render draws the label.
func (l *Label) Render(ctx runtime.RenderContext) {
	bounds := l.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}

	text := truncateString(l.text, bounds.Width)
	width := runewidth.StringWidth(text)

	x := bounds.X
	switch l.alignment {
	case AlignCenter:
		x = bounds.X + (bounds.Width-width)/2
	case AlignRight:
		x = bounds.X + bounds.Width - width
	}

	ctx.Buffer.SetString(x, bounds.Y, text, l.style)
}
