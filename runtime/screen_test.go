package runtime

import (
	"testing"

	"github.com/odvcencio/stagehand/backend"
)

type focusWidget struct {
	bounds  Rect
	focused bool
	keys    int
	consume bool
}

func (w *focusWidget) Measure(constraints Constraints) Size { return Size{} }
func (w *focusWidget) Layout(bounds Rect)                   { w.bounds = bounds }
func (w *focusWidget) Render(ctx RenderContext)             {}
func (w *focusWidget) Bounds() Rect                         { return w.bounds }
func (w *focusWidget) CanFocus() bool                       { return true }
func (w *focusWidget) Focus()                               { w.focused = true }
func (w *focusWidget) Blur()                                { w.focused = false }
func (w *focusWidget) IsFocused() bool                      { return w.focused }

func (w *focusWidget) HandleMessage(msg Message) HandleResult {
	if _, ok := msg.(KeyMsg); ok {
		w.keys++
		if w.consume {
			return Handled()
		}
	}
	return Unhandled()
}

type containerWidget struct {
	bounds   Rect
	children []Widget
}

func (w *containerWidget) Measure(constraints Constraints) Size { return Size{} }
func (w *containerWidget) Layout(bounds Rect)                   { w.bounds = bounds }
func (w *containerWidget) Render(ctx RenderContext)             {}
func (w *containerWidget) Bounds() Rect                         { return w.bounds }
func (w *containerWidget) ChildWidgets() []Widget               { return w.children }
func (w *containerWidget) HandleMessage(msg Message) HandleResult {
	return Unhandled()
}

func TestScreen_FocusCycling(t *testing.T) {
	first := &focusWidget{}
	second := &focusWidget{}
	root := &containerWidget{children: []Widget{first, second}}
	screen := NewScreen(20, 5)

	screen.SetRoot(root)
	if !first.focused {
		t.Fatalf("expected first widget focused after SetRoot")
	}

	screen.HandleMessage(KeyMsg{Key: backend.KeyTab})
	if first.focused || !second.focused {
		t.Fatalf("expected focus to move to second widget")
	}

	screen.HandleMessage(KeyMsg{Key: backend.KeyTab})
	if !first.focused {
		t.Fatalf("expected focus to wrap to first widget")
	}

	screen.HandleMessage(KeyMsg{Key: backend.KeyBacktab})
	if !second.focused {
		t.Fatalf("expected backtab to move focus to second widget")
	}
}

func TestScreen_KeyGoesToFocusedFirst(t *testing.T) {
	first := &focusWidget{consume: true}
	second := &focusWidget{}
	root := &containerWidget{children: []Widget{first, second}}
	screen := NewScreen(20, 5)

	screen.SetRoot(root)
	result := screen.HandleMessage(KeyMsg{Key: backend.KeyRune, Rune: 'x'})
	if !result.Handled {
		t.Fatalf("expected focused widget to consume the key")
	}
	if first.keys != 1 || second.keys != 0 {
		t.Fatalf("expected key delivery first=1 second=0, got first=%d second=%d", first.keys, second.keys)
	}
}

func TestScreen_MouseHitTest(t *testing.T) {
	first := &focusWidget{}
	second := &focusWidget{}
	root := &containerWidget{children: []Widget{first, second}}
	screen := NewScreen(20, 5)
	screen.SetRoot(root)

	first.Layout(Rect{X: 0, Y: 0, Width: 10, Height: 1})
	second.Layout(Rect{X: 0, Y: 2, Width: 10, Height: 1})

	screen.HandleMessage(MouseMsg{X: 3, Y: 2, Button: backend.MouseLeft, Action: backend.MousePress})
	if !second.focused {
		t.Fatalf("expected click to focus the widget under the pointer")
	}
}
