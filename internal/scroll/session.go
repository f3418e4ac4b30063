package scroll

import (
	"fmt"
	"log/slog"

	"github.com/gravitrone/listbox/internal/items"
)

// Options configures a session.
type Options struct {
	Height  int
	OriginX int
	OriginY int
	Colors  Colors
	Logger  *slog.Logger
}

// Selection is the item confirmed by the user.
type Selection struct {
	Text  string
	Index int
}

func (s Selection) String() string {
	return fmt.Sprintf("Item selected: %s | Index: %d", s.Text, s.Index)
}

// Session drives one list box interaction. Start paints the first window,
// then each Handle call applies a single event and its repaint.
type Session struct {
	state  *State
	store  *items.Store
	engine *Engine
	logger *slog.Logger

	started bool
	done    bool
}

// NewSession prepares a session over store. The store must not be empty.
func NewSession(store *items.Store, screen Screen, opts Options) *Session {
	state := NewState(store.Len(), opts.Height, opts.OriginX, opts.OriginY, opts.Colors)
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		state:  state,
		store:  store,
		engine: NewEngine(state, store, screen),
		logger: logger,
	}
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return *s.state
}

// Done reports whether the selection has been confirmed.
func (s *Session) Done() bool {
	return s.done
}

// Selection returns the confirmed item. ok is false until confirmation.
func (s *Session) Selection() (sel Selection, ok bool) {
	if !s.done {
		return Selection{}, false
	}
	return Selection{Text: s.state.LastText, Index: s.state.LastIndex}, true
}

// Start paints the initial view. Calling it again is a no-op.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	if !s.state.ScrollEnabled {
		s.renderWindow()
		s.engine.Paint(s.state.Selected, true)
		return
	}
	s.enterWindow()
}

// Handle applies one event. It returns true once the selection is confirmed.
func (s *Session) Handle(ev Event) bool {
	if s.done {
		return true
	}
	if !s.started {
		s.Start()
	}

	switch ev {
	case EventUp:
		s.move(Up)
	case EventDown:
		s.move(Down)
	case EventConfirm:
		item, err := s.store.Get(s.state.Selected)
		if err != nil {
			panic(err)
		}
		s.state.LastText = item.Text
		s.state.LastIndex = item.Index
		s.done = true
		s.logger.Debug("selection confirmed", "index", item.Index, "text", item.Text)
	}
	return s.done
}

// Redraw repaints the current window and highlight without changing state.
func (s *Session) Redraw() {
	s.renderWindow()
	s.engine.Paint(s.state.Selected, true)
}

func (s *Session) move(d Direction) {
	if !s.engine.Step(d) {
		return
	}
	st := s.state
	boundary := st.Boundary(d)
	st.Shift(d)
	s.logger.Debug("window shift",
		"length", st.ItemCount,
		"index", st.Selected,
		"boundary", boundary,
		"direction", d.String(),
		"window_start", st.WindowStart,
		"scroll_enabled", st.ScrollEnabled,
	)
	s.enterWindow()
}

// enterWindow paints the window at WindowStart with the highlight on its
// first row. After a downward shift the highlight is walked to the last row
// so the bar appears to stay at the bottom edge while the items move.
func (s *Session) enterWindow() {
	st := s.state
	st.Selected = st.WindowStart
	st.HighlightRow = st.OriginY
	s.renderWindow()
	s.engine.Paint(st.Selected, true)

	if st.Direction == Down && st.WindowStart != 0 {
		for i := 0; i < st.ViewportHeight; i++ {
			s.engine.Step(Down)
		}
	}
}

func (s *Session) renderWindow() {
	st := s.state
	for i := st.WindowStart; i < st.WindowStart+st.ViewportHeight; i++ {
		s.engine.Paint(i, false)
	}
}

// Run drives a session from input until confirmation or an input error.
func Run(store *items.Store, screen Screen, input Input, opts Options) (Selection, error) {
	if store.Len() == 0 {
		return Selection{}, fmt.Errorf("run list box: %w", items.ErrEmpty)
	}
	s := NewSession(store, screen, opts)
	s.Start()
	for {
		ev, err := input.ReadEvent()
		if err != nil {
			return Selection{}, fmt.Errorf("read input: %w", err)
		}
		if s.Handle(ev) {
			sel, _ := s.Selection()
			return sel, nil
		}
	}
}

// ListBox is the single-call entry point: it shows texts at (x, y) with a
// viewport of height rows and returns the confirmed item.
func ListBox(texts []string, x, y int, colors Colors, height int, screen Screen, input Input) (Selection, error) {
	return Run(items.New(texts...), screen, input, Options{
		Height:  height,
		OriginX: x,
		OriginY: y,
		Colors:  colors,
	})
}
