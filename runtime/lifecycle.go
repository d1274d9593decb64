package runtime

// Lifecycle widgets hook mount and unmount. Mount is where
// subscriptions get registered and scene controllers attach; Unmount
// is where they are released.
type Lifecycle interface {
	Mount()
	Unmount()
}

// MountTree mounts the tree, parents first. A parent's Mount runs
// before its children's so anything the children observe is live.
func MountTree(root Widget) {
	walkPreOrder(root, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Mount()
		}
	})
}

// UnmountTree unmounts the tree, children first, the reverse of
// MountTree.
func UnmountTree(root Widget) {
	walkPostOrder(root, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Unmount()
		}
	})
}
