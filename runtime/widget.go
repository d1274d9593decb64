// Package runtime drives a widget tree against a terminal backend.
package runtime

import "github.com/odvcencio/stagehand/backend"

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a rectangle in screen cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Constraints bound the size a widget may request.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Constrain clamps a size into the constraints.
func (c Constraints) Constrain(size Size) Size {
	if size.Width < c.MinWidth {
		size.Width = c.MinWidth
	}
	if c.MaxWidth > 0 && size.Width > c.MaxWidth {
		size.Width = c.MaxWidth
	}
	if size.Height < c.MinHeight {
		size.Height = c.MinHeight
	}
	if c.MaxHeight > 0 && size.Height > c.MaxHeight {
		size.Height = c.MaxHeight
	}
	return size
}

// MaxSize returns the largest size the constraints allow.
func (c Constraints) MaxSize() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// Widget is the basic element of the UI tree.
type Widget interface {
	Measure(constraints Constraints) Size
	Layout(bounds Rect)
	Render(ctx RenderContext)
	HandleMessage(msg Message) HandleResult
}

// ChildProvider exposes a widget's children for tree walks.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// BoundsProvider exposes a widget's laid-out bounds.
type BoundsProvider interface {
	Bounds() Rect
}

// Focusable widgets participate in keyboard focus cycling.
type Focusable interface {
	Widget
	CanFocus() bool
	Focus()
	Blur()
	IsFocused() bool
}

// HandleResult reports how a widget handled a message.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Unhandled reports an ignored message.
func Unhandled() HandleResult {
	return HandleResult{}
}

// Handled reports a consumed message.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// HandledWith reports a consumed message with commands to bubble up.
func HandledWith(cmds ...Command) HandleResult {
	return HandleResult{Handled: true, Commands: cmds}
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer *Buffer
	Bounds Rect
}

// Sub creates a context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{Buffer: ctx.Buffer, Bounds: bounds}
}

// Clear fills the context bounds with spaces using the provided style.
func (ctx RenderContext) Clear(style backend.Style) {
	if ctx.Buffer == nil {
		return
	}
	ctx.Buffer.Fill(ctx.Bounds, ' ', style)
}
