package widgets

import (
	"testing"

	"github.com/odvcencio/stagehand/runtime"
)

func TestColumn_LayoutStacksChildren(t *testing.T) {
	first := NewLabel("one")
	second := NewLabel("two")
	col := NewColumn(first, second)

	col.Layout(runtime.Rect{X: 0, Y: 0, Width: 20, Height: 10})

	if first.Bounds().Y != 0 || first.Bounds().Height != 1 {
		t.Fatalf("unexpected first bounds %+v", first.Bounds())
	}
	if second.Bounds().Y != 1 {
		t.Fatalf("expected second child below first, got %+v", second.Bounds())
	}
}

func TestColumn_FlexFillsLeftover(t *testing.T) {
	header := NewLabel("header")
	body := NewLabel("body")
	col := NewColumn().Add(header)
	col.AddFlex(body, 1)

	col.Layout(runtime.Rect{X: 0, Y: 0, Width: 20, Height: 10})

	if body.Bounds().Height != 9 {
		t.Fatalf("expected flex child to take leftover height, got %d", body.Bounds().Height)
	}
}

func TestColumn_GapSeparatesChildren(t *testing.T) {
	first := NewLabel("one")
	second := NewLabel("two")
	col := NewColumn(first, second).SetGap(1)

	col.Layout(runtime.Rect{X: 0, Y: 0, Width: 20, Height: 10})

	if second.Bounds().Y != 2 {
		t.Fatalf("expected gap row between children, got y=%d", second.Bounds().Y)
	}
}
