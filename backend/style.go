package backend

// Color identifies a terminal color.
// ColorDefault leaves the terminal's own color in place.
type Color int32

const (
	ColorDefault Color = iota - 1
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Style describes how a cell is drawn.
// The zero value is not meaningful; start from DefaultStyle.
type Style struct {
	Foreground Color
	Background Color
	bold       bool
	reverse    bool
	underline  bool
	dim        bool
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns a copy with the foreground color set.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy with the background color set.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// Bold returns a copy with bold set.
func (s Style) Bold(on bool) Style {
	s.bold = on
	return s
}

// Reverse returns a copy with reverse video set.
func (s Style) Reverse(on bool) Style {
	s.reverse = on
	return s
}

// Underline returns a copy with underline set.
func (s Style) Underline(on bool) Style {
	s.underline = on
	return s
}

// Dim returns a copy with dim set.
func (s Style) Dim(on bool) Style {
	s.dim = on
	return s
}

// IsBold reports whether bold is set.
func (s Style) IsBold() bool { return s.bold }

// IsReverse reports whether reverse video is set.
func (s Style) IsReverse() bool { return s.reverse }

// IsUnderline reports whether underline is set.
func (s Style) IsUnderline() bool { return s.underline }

// IsDim reports whether dim is set.
func (s Style) IsDim() bool { return s.dim }
