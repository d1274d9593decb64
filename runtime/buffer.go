package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/stagehand/backend"
)

// Cell is one terminal cell.
type Cell struct {
	Rune  rune
	Style backend.Style
}

// Buffer is an off-screen cell grid.
// FlushTo writes only cells that changed since the last flush, unless
// a full redraw has been forced.
type Buffer struct {
	width   int
	height  int
	cells   []Cell
	flushed []Cell
	force   bool
}

// NewBuffer creates a buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize reallocates the grid and forces a full redraw.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	b.flushed = make([]Cell, width*height)
	b.force = true
}

// MarkAllDirty forces the next flush to rewrite every cell.
func (b *Buffer) MarkAllDirty() {
	if b == nil {
		return
	}
	b.force = true
}

// Set writes a single cell.
func (b *Buffer) Set(x, y int, r rune, style backend.Style) {
	if b == nil || x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at a position.
func (b *Buffer) Get(x, y int) Cell {
	if b == nil || x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetString writes a string starting at a position.
// Wide runes occupy their display width; the string is clipped at the
// buffer edge.
func (b *Buffer) SetString(x, y int, text string, style backend.Style) {
	if b == nil || y < 0 || y >= b.height {
		return
	}
	for _, r := range text {
		if x >= b.width {
			return
		}
		b.Set(x, y, r, style)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		for i := 1; i < w && x+i < b.width; i++ {
			b.Set(x+i, y, ' ', style)
		}
		x += w
	}
}

// Fill fills a rectangle with a rune.
func (b *Buffer) Fill(bounds Rect, r rune, style backend.Style) {
	if b == nil {
		return
	}
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		for x := bounds.X; x < bounds.X+bounds.Width; x++ {
			b.Set(x, y, r, style)
		}
	}
}

// Clear fills the whole buffer with spaces in the default style.
func (b *Buffer) Clear() {
	if b == nil {
		return
	}
	style := backend.DefaultStyle()
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: style}
	}
}

// FlushTo writes changed cells to the backend and returns the count.
func (b *Buffer) FlushTo(be backend.Backend) int {
	if b == nil || be == nil {
		return 0
	}
	written := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			cell := b.cells[i]
			if cell.Rune == 0 {
				cell.Rune = ' '
			}
			if !b.force && cell == b.flushed[i] {
				continue
			}
			be.SetContent(x, y, cell.Rune, cell.Style)
			b.flushed[i] = cell
			written++
		}
	}
	b.force = false
	return written
}
