// Package backend abstracts the terminal runtime that drives rendering.
package backend

// Backend is implemented by terminal runtimes.
// PollEvent blocks until an event arrives; it returns nil when the
// backend has been finalized.
type Backend interface {
	Init() error
	Fini()
	Size() (w, h int)
	SetContent(x, y int, r rune, style Style)
	Show()
	HideCursor()
	ShowCursor(x, y int)
	PollEvent() Event
	ApplyPresentation(opts PresentationOptions)
}

// PresentationOptions carries one-shot platform presentation flags.
// The core passes these through to the backend uninterpreted; each
// backend honors the flags it can express and ignores the rest.
type PresentationOptions struct {
	MouseCapture   bool
	BracketedPaste bool
	HideCursor     bool
	Title          string
}
