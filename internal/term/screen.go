// Package term holds the terminal collaborators of the list box: an ANSI
// screen, a raw-mode keyboard decoder and a polling input variant.
package term

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/gravitrone/listbox/internal/sanitize"
	"github.com/gravitrone/listbox/internal/scroll"
)

// Screen paints on an ANSI terminal. Coordinates are 1-based columns and rows.
type Screen struct {
	out    *termenv.Output
	fg, bg scroll.Color
}

// NewScreen writes escape sequences to w using the basic 16 colour profile.
func NewScreen(w io.Writer) *Screen {
	return &Screen{
		out: termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI)),
		fg:  scroll.White,
		bg:  scroll.Black,
	}
}

// MoveCursor positions the next write at column x, row y.
func (s *Screen) MoveCursor(x, y int) {
	s.out.MoveCursor(y, x)
}

// SetColors sets the colours of subsequent writes.
func (s *Screen) SetColors(fg, bg scroll.Color) {
	s.fg, s.bg = fg, bg
}

// WriteText writes text at the cursor. Control characters and escape
// sequences are stripped so item text cannot drive the terminal.
func (s *Screen) WriteText(text string) {
	styled := s.out.String(sanitize.OneLine(text)).
		Foreground(termenv.ANSIColor(s.fg)).
		Background(termenv.ANSIColor(s.bg))
	_, _ = s.out.WriteString(styled.String())
}

// Clear erases the display.
func (s *Screen) Clear() {
	s.out.ClearScreen()
}

// HideCursor hides the terminal cursor while the list is active.
func (s *Screen) HideCursor() {
	s.out.HideCursor()
}

// ShowCursor restores the terminal cursor.
func (s *Screen) ShowCursor() {
	s.out.ShowCursor()
}

// Reset clears colour attributes.
func (s *Screen) Reset() {
	s.out.Reset()
}
