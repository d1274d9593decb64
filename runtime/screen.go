package runtime

import "github.com/odvcencio/stagehand/backend"

// Screen manages the widget tree, focus, and rendering into a buffer.
type Screen struct {
	width, height int
	root          Widget
	buffer        *Buffer
	services      Services
	focusables    []Focusable
	focusIndex    int
}

// NewScreen creates a new screen with the given dimensions.
func NewScreen(w, h int) *Screen {
	return &Screen{
		width:      w,
		height:     h,
		buffer:     NewBuffer(w, h),
		focusIndex: -1,
	}
}

// SetServices configures app services for bindable widgets.
func (s *Screen) SetServices(services Services) {
	s.services = services
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

// SetRoot swaps the root widget, unmounting the old tree and
// binding, laying out, and mounting the new one.
func (s *Screen) SetRoot(root Widget) {
	if s.root != nil {
		UnmountTree(s.root)
		UnbindTree(s.root)
	}
	s.root = root
	s.focusables = nil
	s.focusIndex = -1

	if root != nil {
		BindTree(root, s.services)
		root.Layout(Rect{X: 0, Y: 0, Width: s.width, Height: s.height})
		MountTree(root)
		s.refreshFocusables()
		s.FocusFirst()
	}
}

// Resize changes the screen dimensions and re-lays-out the tree.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	if s.root != nil {
		s.root.Layout(Rect{X: 0, Y: 0, Width: w, Height: h})
	}
}

// Render draws the tree into the buffer.
func (s *Screen) Render() {
	if s.root == nil {
		return
	}
	s.root.Render(RenderContext{
		Buffer: s.buffer,
		Bounds: Rect{X: 0, Y: 0, Width: s.width, Height: s.height},
	})
}

// HandleMessage dispatches a message into the tree.
// Key messages go to the focused widget first; Tab and Backtab cycle
// focus when nothing consumed them. Mouse messages are routed to the
// innermost widget whose bounds contain the point.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	if s == nil || s.root == nil {
		return Unhandled()
	}

	switch m := msg.(type) {
	case KeyMsg:
		if focused := s.Focused(); focused != nil {
			if result := focused.HandleMessage(msg); result.Handled {
				return s.applyFocusCommands(result)
			}
		}
		if m.Key == backend.KeyTab {
			s.FocusNext()
			return Handled()
		}
		if m.Key == backend.KeyBacktab {
			s.FocusPrev()
			return Handled()
		}
		return s.applyFocusCommands(s.root.HandleMessage(msg))
	case MouseMsg:
		if target := hitTest(s.root, m.X, m.Y); target != nil {
			if focusable, ok := target.(Focusable); ok && focusable.CanFocus() && m.Action == backend.MousePress {
				s.focusWidget(focusable)
			}
			return s.applyFocusCommands(target.HandleMessage(msg))
		}
		return Unhandled()
	default:
		return s.applyFocusCommands(s.root.HandleMessage(msg))
	}
}

func (s *Screen) applyFocusCommands(result HandleResult) HandleResult {
	remaining := result.Commands[:0]
	for _, cmd := range result.Commands {
		switch cmd.(type) {
		case FocusNext:
			s.FocusNext()
		case FocusPrev:
			s.FocusPrev()
		default:
			remaining = append(remaining, cmd)
		}
	}
	result.Commands = remaining
	return result
}

// Focused returns the currently focused widget, if any.
func (s *Screen) Focused() Focusable {
	if s.focusIndex < 0 || s.focusIndex >= len(s.focusables) {
		return nil
	}
	return s.focusables[s.focusIndex]
}

// FocusFirst moves focus to the first focusable widget.
func (s *Screen) FocusFirst() {
	if len(s.focusables) == 0 {
		return
	}
	s.setFocusIndex(0)
}

// FocusNext moves focus forward, wrapping around.
func (s *Screen) FocusNext() {
	if len(s.focusables) == 0 {
		return
	}
	s.setFocusIndex((s.focusIndex + 1) % len(s.focusables))
}

// FocusPrev moves focus backward, wrapping around.
func (s *Screen) FocusPrev() {
	if len(s.focusables) == 0 {
		return
	}
	next := s.focusIndex - 1
	if next < 0 {
		next = len(s.focusables) - 1
	}
	s.setFocusIndex(next)
}

func (s *Screen) setFocusIndex(index int) {
	if current := s.Focused(); current != nil {
		current.Blur()
	}
	s.focusIndex = index
	if next := s.Focused(); next != nil {
		next.Focus()
	}
}

func (s *Screen) focusWidget(target Focusable) {
	for i, f := range s.focusables {
		if f == target {
			s.setFocusIndex(i)
			return
		}
	}
}

func (s *Screen) refreshFocusables() {
	s.focusables = s.focusables[:0]
	collectFocusables(s.root, &s.focusables)
}

func collectFocusables(w Widget, out *[]Focusable) {
	if w == nil {
		return
	}
	if f, ok := w.(Focusable); ok && f.CanFocus() {
		*out = append(*out, f)
	}
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			collectFocusables(child, out)
		}
	}
}

func hitTest(w Widget, x, y int) Widget {
	if w == nil {
		return nil
	}
	bounds, ok := w.(BoundsProvider)
	if ok {
		if !bounds.Bounds().Contains(x, y) {
			return nil
		}
	}
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			if hit := hitTest(child, x, y); hit != nil {
				return hit
			}
		}
	}
	if ok {
		return w
	}
	return nil
}
