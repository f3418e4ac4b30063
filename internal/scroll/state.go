// Package scroll implements the selection and scroll state machine of a
// single-selection list box rendered on a character grid.
//
// The package never talks to a terminal directly. It paints through a Screen
// and reads normalized events from an Input, so the same state machine runs
// behind a raw ANSI terminal, a polled keyboard, or a bubbletea model.
package scroll

// Direction is a movement direction.
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

func (d Direction) delta() int {
	if d == Up {
		return -1
	}
	return 1
}

// State is the geometry and selection of one session.
type State struct {
	ItemCount      int
	ViewportHeight int
	ScrollEnabled  bool
	WindowStart    int

	OriginX int
	OriginY int

	HighlightRow int
	Selected     int

	Colors    Colors
	Direction Direction

	LastText  string
	LastIndex int
}

// NewState computes the initial geometry. A viewport taller than the list is
// clamped to the list, and a non-positive one shows every item without
// scrolling.
func NewState(itemCount, viewportHeight, originX, originY int, colors Colors) *State {
	s := &State{
		ItemCount:      itemCount,
		ViewportHeight: viewportHeight,
		OriginX:        originX,
		OriginY:        originY,
		Colors:         colors,
		HighlightRow:   originY,
		Direction:      Down,
		LastIndex:      -1,
	}
	if s.ViewportHeight > itemCount {
		s.ViewportHeight = itemCount
	}
	s.ScrollEnabled = itemCount > s.ViewportHeight &&
		itemCount-s.ViewportHeight > 0 &&
		s.ViewportHeight > 0
	if s.ViewportHeight <= 0 {
		s.ViewportHeight = itemCount
	}
	return s
}

// MaxWindowStart is the last valid window offset.
func (s *State) MaxWindowStart() int {
	if !s.ScrollEnabled {
		return 0
	}
	return s.ItemCount - s.ViewportHeight
}

// Boundary returns the last index reachable in direction d without shifting
// the window.
func (s *State) Boundary(d Direction) int {
	if d == Up {
		if s.ScrollEnabled {
			return s.WindowStart
		}
		return 0
	}
	if s.ScrollEnabled {
		return s.WindowStart + s.ViewportHeight - 1
	}
	return s.ItemCount - 1
}

// RowOf returns the screen row of index within the current window.
func (s *State) RowOf(index int) int {
	return s.OriginY + index - s.WindowStart
}

// Shift moves the window one item in direction d, clamped to
// [0, MaxWindowStart], and remembers d for re-entry.
func (s *State) Shift(d Direction) {
	s.WindowStart += d.delta()
	if s.WindowStart < 0 {
		s.WindowStart = 0
	}
	if limit := s.MaxWindowStart(); s.WindowStart > limit {
		s.WindowStart = limit
	}
	s.Direction = d
}

// InWindow reports whether index is inside the current window.
func (s *State) InWindow(index int) bool {
	if !s.ScrollEnabled {
		return index >= 0 && index < s.ItemCount
	}
	return index >= s.WindowStart && index < s.WindowStart+s.ViewportHeight
}
