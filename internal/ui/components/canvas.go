package components

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/listbox/internal/scroll"
)

// Span is a run of text written at one cursor position.
type Span struct {
	X    int
	Text string
	Fg   scroll.Color
	Bg   scroll.Color
}

// Canvas is an in-memory character grid that implements scroll.Screen.
// Coordinates are 1-based like a terminal; a later write at the same column
// of a row replaces the earlier one.
type Canvas struct {
	x, y   int
	fg, bg scroll.Color
	rows   map[int][]Span
}

// NewCanvas returns an empty canvas with the cursor at (1, 1).
func NewCanvas() *Canvas {
	return &Canvas{x: 1, y: 1, fg: scroll.White, bg: scroll.Black, rows: map[int][]Span{}}
}

func (c *Canvas) MoveCursor(x, y int) {
	c.x, c.y = x, y
}

func (c *Canvas) SetColors(fg, bg scroll.Color) {
	c.fg, c.bg = fg, bg
}

func (c *Canvas) WriteText(s string) {
	text := SanitizeOneLine(s)
	span := Span{X: c.x, Text: text, Fg: c.fg, Bg: c.bg}

	row := c.rows[c.y][:0:0]
	for _, existing := range c.rows[c.y] {
		if existing.X != span.X {
			row = append(row, existing)
		}
	}
	row = append(row, span)
	sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
	c.rows[c.y] = row
	c.x += utf8.RuneCountInString(text)
}

// Clear drops everything painted so far.
func (c *Canvas) Clear() {
	c.rows = map[int][]Span{}
	c.x, c.y = 1, 1
}

// SpanAt returns the span written at column x of row y.
func (c *Canvas) SpanAt(x, y int) (Span, bool) {
	for _, s := range c.rows[y] {
		if s.X == x {
			return s, true
		}
	}
	return Span{}, false
}

// Rows returns the number of rows from the top of the canvas to the last
// painted one.
func (c *Canvas) Rows() int {
	last := 0
	for y := range c.rows {
		if y > last {
			last = y
		}
	}
	return last
}

// Line returns row y as plain text.
func (c *Canvas) Line(y int) string {
	return c.line(y, func(s Span) string { return s.Text })
}

// Render returns the canvas as styled lines, row 1 first.
func (c *Canvas) Render() string {
	lines := make([]string, 0, c.Rows())
	for y := 1; y <= c.Rows(); y++ {
		lines = append(lines, c.line(y, styleSpan))
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) line(y int, render func(Span) string) string {
	var b strings.Builder
	col := 1
	for _, s := range c.rows[y] {
		if s.X > col {
			b.WriteString(strings.Repeat(" ", s.X-col))
			col = s.X
		}
		b.WriteString(render(s))
		col += utf8.RuneCountInString(s.Text)
	}
	return b.String()
}

func styleSpan(s Span) string {
	return lipgloss.NewStyle().
		Foreground(ansiColor(s.Fg)).
		Background(ansiColor(s.Bg)).
		Render(s.Text)
}

func ansiColor(c scroll.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}
