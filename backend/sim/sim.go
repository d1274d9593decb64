// Package sim provides an in-memory backend for headless tests.
package sim

import (
	"sync"

	"github.com/odvcencio/stagehand/backend"
)

type cell struct {
	r     rune
	style backend.Style
}

// Backend records cells and presentation flags without a terminal.
// Events are injected with Inject and drained by PollEvent.
type Backend struct {
	mu           sync.Mutex
	width        int
	height       int
	cells        []cell
	events       chan backend.Event
	shows        int
	inited       bool
	finished     bool
	cursorHidden bool
	Presentation backend.PresentationOptions
	PresentCalls int
}

// New creates a sim backend with the given dimensions.
func New(width, height int) *Backend {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return &Backend{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		events: make(chan backend.Event, 64),
	}
}

// Init marks the backend initialized.
func (b *Backend) Init() error {
	b.mu.Lock()
	b.inited = true
	b.mu.Unlock()
	return nil
}

// Fini closes the event stream.
func (b *Backend) Fini() {
	b.mu.Lock()
	if !b.finished {
		b.finished = true
		close(b.events)
	}
	b.mu.Unlock()
}

// Size returns the configured dimensions.
func (b *Backend) Size() (w, h int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// SetContent writes a cell inside bounds.
func (b *Backend) SetContent(x, y int, r rune, style backend.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = cell{r: r, style: style}
}

// Show counts flushes.
func (b *Backend) Show() {
	b.mu.Lock()
	b.shows++
	b.mu.Unlock()
}

// ShowCount returns how many times Show ran.
func (b *Backend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// HideCursor records cursor state.
func (b *Backend) HideCursor() {
	b.mu.Lock()
	b.cursorHidden = true
	b.mu.Unlock()
}

// ShowCursor records cursor state.
func (b *Backend) ShowCursor(x, y int) {
	b.mu.Lock()
	b.cursorHidden = false
	b.mu.Unlock()
}

// ApplyPresentation records the presentation flags.
func (b *Backend) ApplyPresentation(opts backend.PresentationOptions) {
	b.mu.Lock()
	b.Presentation = opts
	b.PresentCalls++
	b.mu.Unlock()
}

// Inject queues an event for PollEvent.
// It reports false when the event buffer is full or the backend is done.
func (b *Backend) Inject(ev backend.Event) bool {
	b.mu.Lock()
	if b.finished {
		b.mu.Unlock()
		return false
	}
	b.mu.Unlock()
	select {
	case b.events <- ev:
		return true
	default:
		return false
	}
}

// PollEvent blocks for the next injected event.
// It returns nil after Fini.
func (b *Backend) PollEvent() backend.Event {
	ev, ok := <-b.events
	if !ok {
		return nil
	}
	return ev
}

// RuneAt returns the rune stored at a cell.
func (b *Backend) RuneAt(x, y int) rune {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.cells[y*b.width+x].r
}

// Row returns the runes of a row as a string, with zero cells as spaces.
func (b *Backend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		r := b.cells[y*b.width+x].r
		if r == 0 {
			r = ' '
		}
		out[x] = r
	}
	return string(out)
}
