package scroll

import (
	"errors"
	"strings"

	"github.com/gravitrone/listbox/internal/items"
)

type cell struct {
	text string
	pair Pair
}

// fakeScreen keeps the last text painted on every row.
type fakeScreen struct {
	x, y   int
	pair   Pair
	rows   map[int]cell
	writes int
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{rows: map[int]cell{}}
}

func (f *fakeScreen) MoveCursor(x, y int) { f.x, f.y = x, y }

func (f *fakeScreen) SetColors(fg, bg Color) { f.pair = Pair{Fg: fg, Bg: bg} }

func (f *fakeScreen) WriteText(s string) {
	f.rows[f.y] = cell{text: strings.TrimRight(s, " "), pair: f.pair}
	f.writes++
}

// selectedRows returns the rows currently painted in the selected pair.
func (f *fakeScreen) selectedRows(colors Colors) []int {
	var rows []int
	for row, c := range f.rows {
		if c.pair == colors.Selected {
			rows = append(rows, row)
		}
	}
	return rows
}

var errInputDone = errors.New("input exhausted")

// scriptedInput replays a fixed sequence of events.
type scriptedInput struct {
	events []Event
}

func (s *scriptedInput) ReadEvent() (Event, error) {
	if len(s.events) == 0 {
		return EventIgnore, errInputDone
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func repeat(ev Event, n int) []Event {
	out := make([]Event, n)
	for i := range out {
		out[i] = ev
	}
	return out
}

func letters(n int) *items.Store {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = string(rune('A' + i))
	}
	return items.New(texts...)
}

var testColors = DefaultColors()
