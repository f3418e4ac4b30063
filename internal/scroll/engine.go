package scroll

import (
	"strings"
	"unicode/utf8"

	"github.com/gravitrone/listbox/internal/items"
	"github.com/gravitrone/listbox/internal/sanitize"
)

// Engine moves the highlight one item at a time and tells the caller when a
// move would leave the current window.
type Engine struct {
	state  *State
	store  *items.Store
	screen Screen

	// width is the widest item as drawn, so every row paints a bar of equal
	// length.
	width int
}

// NewEngine binds an engine to a state, its items and a screen.
func NewEngine(state *State, store *items.Store, screen Screen) *Engine {
	e := &Engine{state: state, store: store, screen: screen}
	for item := range store.All() {
		if n := sanitize.Width(item.Text); n > e.width {
			e.width = n
		}
	}
	return e
}

// Step handles one Up or Down request. It returns true, leaving selection
// and screen untouched, when scrolling is enabled and the move would cross
// the window boundary or the end of the list. Without scrolling the
// selection wraps to the opposite end instead.
func (e *Engine) Step(d Direction) (crossed bool) {
	st := e.state
	next := st.Selected + d.delta()
	exists := next >= 0 && next < st.ItemCount

	boundary := st.Boundary(d)
	inside := next <= boundary
	if d == Up {
		inside = next >= boundary
	}

	if exists && inside {
		e.Paint(st.Selected, false)
		st.Selected = next
		st.HighlightRow += d.delta()
		e.Paint(st.Selected, true)
		return false
	}

	if st.ScrollEnabled {
		return true
	}

	e.Paint(st.Selected, false)
	if d == Down {
		st.Selected = 0
		st.HighlightRow = st.OriginY
	} else {
		st.Selected = st.ItemCount - 1
		st.HighlightRow = st.OriginY + st.ViewportHeight - 1
	}
	e.Paint(st.Selected, true)
	return false
}

// Paint draws one item at its row in the normal or selected colours.
func (e *Engine) Paint(index int, selected bool) {
	item, err := e.store.Get(index)
	if err != nil {
		// Indices are kept in range by construction.
		panic(err)
	}
	pair := e.state.Colors.Normal
	if selected {
		pair = e.state.Colors.Selected
	}
	e.screen.MoveCursor(e.state.OriginX, e.state.RowOf(index))
	e.screen.SetColors(pair.Fg, pair.Bg)
	e.screen.WriteText(pad(sanitize.OneLine(item.Text), e.width))
}

func pad(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}
