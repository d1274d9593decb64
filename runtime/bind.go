package runtime

// Bindable widgets receive the app service handle before mounting.
// Through it they reach the state schedulers, the invalidator, the
// frame bus, and presentation pass-through; a widget that subscribes
// to signals or frames does so with the services it was bound with.
type Bindable interface {
	Bind(services Services)
}

// Unbindable widgets release the service handle after unmounting.
type Unbindable interface {
	Unbind()
}

// BindTree hands services to every Bindable widget, parents first,
// so a container is bound before the children it exposes.
func BindTree(root Widget, services Services) {
	if services.isZero() {
		return
	}
	walkPreOrder(root, func(w Widget) {
		if b, ok := w.(Bindable); ok {
			b.Bind(services)
		}
	})
}

// UnbindTree releases services, children first, mirroring unmount
// order so a child never outlives its parent's bindings.
func UnbindTree(root Widget) {
	walkPostOrder(root, func(w Widget) {
		if u, ok := w.(Unbindable); ok {
			u.Unbind()
		}
	})
}

// walkPreOrder visits the widget, then its children.
func walkPreOrder(w Widget, visit func(Widget)) {
	if w == nil {
		return
	}
	visit(w)
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			walkPreOrder(child, visit)
		}
	}
}

// walkPostOrder visits the children, then the widget.
func walkPostOrder(w Widget, visit func(Widget)) {
	if w == nil {
		return
	}
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			walkPostOrder(child, visit)
		}
	}
	visit(w)
}
