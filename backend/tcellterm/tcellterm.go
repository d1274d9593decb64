// Package tcellterm implements the backend interface over tcell.
package tcellterm

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/stagehand/backend"
)

// Terminal is a tcell-backed terminal runtime.
type Terminal struct {
	screen      tcell.Screen
	lastButtons tcell.ButtonMask
}

// New creates an uninitialized tcell terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

// Init initializes the underlying screen.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	return nil
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (w, h int) {
	return t.screen.Size()
}

// SetContent writes a cell.
func (t *Terminal) SetContent(x, y int, r rune, style backend.Style) {
	t.screen.SetContent(x, y, r, nil, toTcellStyle(style))
}

// Show flushes pending cells to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// HideCursor hides the hardware cursor.
func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

// ShowCursor places the hardware cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

// ApplyPresentation applies session presentation flags.
func (t *Terminal) ApplyPresentation(opts backend.PresentationOptions) {
	if opts.MouseCapture {
		t.screen.EnableMouse()
	} else {
		t.screen.DisableMouse()
	}
	if opts.BracketedPaste {
		t.screen.EnablePaste()
	} else {
		t.screen.DisablePaste()
	}
	if opts.HideCursor {
		t.screen.HideCursor()
	}
	if opts.Title != "" {
		t.screen.SetTitle(opts.Title)
	}
}

// PollEvent blocks for the next input event.
// Bracketed paste arrives from tcell as start/end markers around rune
// keys; the runes are collected into a single PasteEvent.
func (t *Terminal) PollEvent() backend.Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			return t.keyEvent(e)
		case *tcell.EventResize:
			w, h := e.Size()
			return backend.ResizeEvent{Width: w, Height: h}
		case *tcell.EventMouse:
			return t.mouseEvent(e)
		case *tcell.EventPaste:
			if e.Start() {
				return backend.PasteEvent{Text: t.collectPaste()}
			}
		}
	}
}

func (t *Terminal) collectPaste() string {
	var text strings.Builder
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			break
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			if e.Key() == tcell.KeyRune {
				text.WriteRune(e.Rune())
			} else if e.Key() == tcell.KeyEnter {
				text.WriteRune('\n')
			}
		case *tcell.EventPaste:
			if !e.Start() {
				return text.String()
			}
		}
	}
	return text.String()
}

func (t *Terminal) keyEvent(e *tcell.EventKey) backend.KeyEvent {
	mods := e.Modifiers()
	out := backend.KeyEvent{
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}
	switch e.Key() {
	case tcell.KeyRune:
		if e.Rune() == ' ' {
			out.Key = backend.KeySpace
		} else {
			out.Key = backend.KeyRune
			out.Rune = e.Rune()
		}
	case tcell.KeyEnter:
		out.Key = backend.KeyEnter
	case tcell.KeyEscape:
		out.Key = backend.KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = backend.KeyBackspace
	case tcell.KeyDelete:
		out.Key = backend.KeyDelete
	case tcell.KeyTab:
		out.Key = backend.KeyTab
	case tcell.KeyBacktab:
		out.Key = backend.KeyBacktab
	case tcell.KeyUp:
		out.Key = backend.KeyUp
	case tcell.KeyDown:
		out.Key = backend.KeyDown
	case tcell.KeyLeft:
		out.Key = backend.KeyLeft
	case tcell.KeyRight:
		out.Key = backend.KeyRight
	case tcell.KeyHome:
		out.Key = backend.KeyHome
	case tcell.KeyEnd:
		out.Key = backend.KeyEnd
	case tcell.KeyPgUp:
		out.Key = backend.KeyPgUp
	case tcell.KeyPgDn:
		out.Key = backend.KeyPgDn
	case tcell.KeyCtrlC:
		out.Key = backend.KeyCtrlC
	default:
		out.Key = backend.KeyNone
	}
	return out
}

func (t *Terminal) mouseEvent(e *tcell.EventMouse) backend.MouseEvent {
	x, y := e.Position()
	mods := e.Modifiers()
	buttons := e.Buttons()
	out := backend.MouseEvent{
		X:     x,
		Y:     y,
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	switch {
	case buttons&tcell.WheelUp != 0:
		out.Button = backend.MouseWheelUp
		out.Action = backend.MousePress
	case buttons&tcell.WheelDown != 0:
		out.Button = backend.MouseWheelDown
		out.Action = backend.MousePress
	case buttons&tcell.Button1 != 0:
		out.Button = backend.MouseLeft
		out.Action = pressOrMove(t.lastButtons&tcell.Button1 != 0)
	case buttons&tcell.Button2 != 0:
		out.Button = backend.MouseRight
		out.Action = pressOrMove(t.lastButtons&tcell.Button2 != 0)
	case buttons&tcell.Button3 != 0:
		out.Button = backend.MouseMiddle
		out.Action = pressOrMove(t.lastButtons&tcell.Button3 != 0)
	default:
		out.Button = backend.MouseNone
		if t.lastButtons != tcell.ButtonNone {
			out.Action = backend.MouseRelease
		} else {
			out.Action = backend.MouseMove
		}
	}
	t.lastButtons = buttons
	return out
}

func pressOrMove(held bool) backend.MouseAction {
	if held {
		return backend.MouseMove
	}
	return backend.MousePress
}

func toTcellStyle(style backend.Style) tcell.Style {
	out := tcell.StyleDefault
	if style.Foreground != backend.ColorDefault {
		out = out.Foreground(tcell.PaletteColor(int(style.Foreground)))
	}
	if style.Background != backend.ColorDefault {
		out = out.Background(tcell.PaletteColor(int(style.Background)))
	}
	return out.
		Bold(style.IsBold()).
		Reverse(style.IsReverse()).
		Underline(style.IsUnderline()).
		Dim(style.IsDim())
}
