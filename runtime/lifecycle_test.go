package runtime

import "testing"

type lifecycleWidget struct {
	children  []Widget
	mounted   int
	unmounted int
	bound     int
	unbound   int
}

func (w *lifecycleWidget) Measure(constraints Constraints) Size {
	return Size{}
}

func (w *lifecycleWidget) Layout(bounds Rect) {}

func (w *lifecycleWidget) Render(ctx RenderContext) {}

func (w *lifecycleWidget) HandleMessage(msg Message) HandleResult {
	return Unhandled()
}

func (w *lifecycleWidget) ChildWidgets() []Widget {
	return w.children
}

func (w *lifecycleWidget) Mount() {
	w.mounted++
}

func (w *lifecycleWidget) Unmount() {
	w.unmounted++
}

func (w *lifecycleWidget) Bind(services Services) {
	w.bound++
}

func (w *lifecycleWidget) Unbind() {
	w.unbound++
}

type orderWidget struct {
	lifecycleWidget
	name string
	log  *[]string
}

func (w *orderWidget) Mount()   { *w.log = append(*w.log, "mount "+w.name) }
func (w *orderWidget) Unmount() { *w.log = append(*w.log, "unmount "+w.name) }

func TestTreeWalkOrder(t *testing.T) {
	var log []string
	a := &orderWidget{name: "a", log: &log}
	b := &orderWidget{name: "b", log: &log}
	root := &orderWidget{name: "root", log: &log}
	root.children = []Widget{a, b}

	MountTree(root)
	UnmountTree(root)

	want := []string{"mount root", "mount a", "mount b", "unmount a", "unmount b", "unmount root"}
	if len(log) != len(want) {
		t.Fatalf("expected %d walk steps, got %v", len(want), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("walk step %d: expected %q, got %q", i, want[i], log[i])
		}
	}
}

func TestScreen_LifecycleRoot(t *testing.T) {
	child := &lifecycleWidget{}
	root := &lifecycleWidget{children: []Widget{child}}
	screen := NewScreen(10, 5)

	screen.SetRoot(root)
	if root.mounted != 1 || child.mounted != 1 {
		t.Fatalf("expected mounted calls root=1 child=1, got root=%d child=%d", root.mounted, child.mounted)
	}

	screen.SetRoot(nil)
	if root.unmounted != 1 || child.unmounted != 1 {
		t.Fatalf("expected unmounted calls root=1 child=1, got root=%d child=%d", root.unmounted, child.unmounted)
	}
}

func TestScreen_BindRoot(t *testing.T) {
	child := &lifecycleWidget{}
	root := &lifecycleWidget{children: []Widget{child}}
	screen := NewScreen(10, 5)
	app := NewApp(AppConfig{})
	screen.SetServices(app.Services())

	screen.SetRoot(root)
	if root.bound != 1 || child.bound != 1 {
		t.Fatalf("expected bind calls root=1 child=1, got root=%d child=%d", root.bound, child.bound)
	}

	screen.SetRoot(nil)
	if root.unbound != 1 || child.unbound != 1 {
		t.Fatalf("expected unbind calls root=1 child=1, got root=%d child=%d", root.unbound, child.unbound)
	}
}
