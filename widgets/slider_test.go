package widgets

import (
	"testing"

	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/runtime"
	"github.com/odvcencio/stagehand/state"
)

func TestSlider_ArrowsAdjustValue(t *testing.T) {
	value := state.NewClamped(50, 0, 100)
	slider := NewSlider("speed", value, 0, 100)

	slider.HandleMessage(runtime.KeyMsg{Key: backend.KeyRight})
	if value.Get() != 55 {
		t.Fatalf("expected 55 after right arrow, got %v", value.Get())
	}

	slider.HandleMessage(runtime.KeyMsg{Key: backend.KeyLeft})
	if value.Get() != 50 {
		t.Fatalf("expected 50 after left arrow, got %v", value.Get())
	}
}

func TestSlider_HomeEnd(t *testing.T) {
	value := state.NewClamped(50, 0, 100)
	slider := NewSlider("speed", value, 0, 100)

	slider.HandleMessage(runtime.KeyMsg{Key: backend.KeyEnd})
	if value.Get() != 100 {
		t.Fatalf("expected max after End, got %v", value.Get())
	}
	slider.HandleMessage(runtime.KeyMsg{Key: backend.KeyHome})
	if value.Get() != 0 {
		t.Fatalf("expected min after Home, got %v", value.Get())
	}
}

func TestSlider_ClampedAtBounds(t *testing.T) {
	value := state.NewClamped(98, 0, 100)
	slider := NewSlider("speed", value, 0, 100)

	slider.HandleMessage(runtime.KeyMsg{Key: backend.KeyRight})
	slider.HandleMessage(runtime.KeyMsg{Key: backend.KeyRight})
	if value.Get() != 100 {
		t.Fatalf("expected clamp at 100, got %v", value.Get())
	}
}

func TestSlider_WheelAdjustsValue(t *testing.T) {
	value := state.NewClamped(50, 0, 100)
	slider := NewSlider("speed", value, 0, 100)

	slider.HandleMessage(runtime.MouseMsg{Button: backend.MouseWheelUp, Action: backend.MousePress})
	if value.Get() != 55 {
		t.Fatalf("expected 55 after wheel up, got %v", value.Get())
	}
}

func TestSlider_RendersTrack(t *testing.T) {
	value := state.NewClamped(0, 0, 100)
	slider := NewSlider("speed", value, 0, 100)
	slider.Layout(runtime.Rect{X: 0, Y: 0, Width: 30, Height: 1})

	buf := runtime.NewBuffer(30, 1)
	slider.Render(runtime.RenderContext{Buffer: buf, Bounds: slider.Bounds()})

	if buf.Get(6, 0).Rune != '█' {
		t.Fatalf("expected knob at track start, got %q", buf.Get(6, 0).Rune)
	}
}

func TestSlider_WideLabelTrackPlacement(t *testing.T) {
	value := state.NewClamped(0, 0, 100)
	slider := NewSlider("速度", value, 0, 100)
	slider.Layout(runtime.Rect{X: 0, Y: 0, Width: 20, Height: 1})

	buf := runtime.NewBuffer(20, 1)
	slider.Render(runtime.RenderContext{Buffer: buf, Bounds: slider.Bounds()})

	// The label spans four columns plus the separator; the knob
	// starts on the next cell.
	if buf.Get(5, 0).Rune != '█' {
		t.Fatalf("expected knob after wide label, got %q", buf.Get(5, 0).Rune)
	}
}
