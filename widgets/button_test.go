package widgets

import (
	"testing"

	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/runtime"
)

func TestButton_PressOnEnterAndSpace(t *testing.T) {
	presses := 0
	button := NewButton("pulse")
	button.OnPress(func() { presses++ })

	if result := button.HandleMessage(runtime.KeyMsg{Key: backend.KeyEnter}); !result.Handled {
		t.Fatalf("expected enter to be handled")
	}
	if result := button.HandleMessage(runtime.KeyMsg{Key: backend.KeySpace}); !result.Handled {
		t.Fatalf("expected space to be handled")
	}
	if presses != 2 {
		t.Fatalf("expected 2 presses, got %d", presses)
	}
}

func TestButton_PressOnClick(t *testing.T) {
	presses := 0
	button := NewButton("pulse")
	button.OnPress(func() { presses++ })

	button.HandleMessage(runtime.MouseMsg{Button: backend.MouseLeft, Action: backend.MousePress})
	button.HandleMessage(runtime.MouseMsg{Button: backend.MouseLeft, Action: backend.MouseRelease})
	if presses != 1 {
		t.Fatalf("expected press only on mouse down, got %d", presses)
	}
}

func TestButton_DisabledIgnoresInput(t *testing.T) {
	presses := 0
	button := NewButton("pulse")
	button.OnPress(func() { presses++ })
	button.SetDisabled(true)

	if result := button.HandleMessage(runtime.KeyMsg{Key: backend.KeyEnter}); result.Handled {
		t.Fatalf("expected disabled button to ignore input")
	}
	if presses != 0 {
		t.Fatalf("expected no presses, got %d", presses)
	}
}

func TestButton_RendersLabel(t *testing.T) {
	button := NewButton("go")
	button.Layout(runtime.Rect{X: 0, Y: 0, Width: 10, Height: 1})

	buf := runtime.NewBuffer(10, 1)
	button.Render(runtime.RenderContext{Buffer: buf, Bounds: button.Bounds()})

	if buf.Get(0, 0).Rune != '[' || buf.Get(2, 0).Rune != 'g' {
		t.Fatalf("expected rendered label, got %q%q", buf.Get(0, 0).Rune, buf.Get(2, 0).Rune)
	}
}
