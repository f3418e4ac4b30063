package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/listbox/internal/config"
	"github.com/gravitrone/listbox/internal/items"
	"github.com/gravitrone/listbox/internal/scroll"
	"github.com/gravitrone/listbox/internal/ui/components"
)

// --- Model ---

// Model is the bubbletea front end for one list box session. The session
// paints into an in-memory canvas that View renders.
type Model struct {
	session *scroll.Session
	canvas  *components.Canvas
	store   *items.Store

	vimKeys     bool
	showMetrics bool
	aborted     bool
	width       int
	height      int
}

// NewModel builds a model over store using the geometry and colours in cfg
// and paints the first window.
func NewModel(store *items.Store, cfg *config.Config, logger *slog.Logger) (Model, error) {
	if store.Len() == 0 {
		return Model{}, fmt.Errorf("new list box model: %w", items.ErrEmpty)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	colors, err := cfg.ScrollColors()
	if err != nil {
		return Model{}, err
	}

	canvas := components.NewCanvas()
	session := scroll.NewSession(store, canvas, scroll.Options{
		Height:  cfg.Height,
		OriginX: cfg.OriginX,
		OriginY: cfg.OriginY,
		Colors:  colors,
		Logger:  logger,
	})
	session.Start()

	return Model{
		session: session,
		canvas:  canvas,
		store:   store,
		vimKeys: cfg.VimKeys,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Done() {
		return m, tea.Quit
	}

	switch {
	case isQuit(msg):
		m.aborted = true
		return m, tea.Quit
	case isEnter(msg):
		m.session.Handle(scroll.EventConfirm)
		return m, tea.Quit
	case isUp(msg, m.vimKeys):
		m.session.Handle(scroll.EventUp)
	case isDown(msg, m.vimKeys):
		m.session.Handle(scroll.EventDown)
	case isRedraw(msg):
		m.canvas.Clear()
		m.session.Redraw()
	case isMetrics(msg):
		m.showMetrics = !m.showMetrics
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(RenderBanner(fmt.Sprintf("%d items", m.store.Len())))
	b.WriteString(m.canvas.Render())
	b.WriteString("\n")

	if m.showMetrics {
		b.WriteString("\n")
		b.WriteString(components.Table("Metrics", m.metrics(), m.width))
		b.WriteString("\n")
	}

	if sel, ok := m.session.Selection(); ok {
		b.WriteString("\n")
		b.WriteString(SuccessStyle.Render(sel.String()))
		b.WriteString("\n")
	}

	b.WriteString(StatusBarStyle.Render(components.HintBar(m.hints(), m.width)))
	return b.String()
}

// Result returns the confirmed selection. ok is false when the user quit
// without confirming.
func (m Model) Result() (sel scroll.Selection, ok bool) {
	return m.session.Selection()
}

// Aborted reports whether the user quit before confirming.
func (m Model) Aborted() bool {
	return m.aborted
}

func (m Model) metrics() []components.Row {
	st := m.session.State()
	last := "-"
	if st.LastIndex >= 0 {
		last = st.LastText
	}
	scrolling := "off"
	if st.ScrollEnabled {
		scrolling = "on"
	}
	return []components.Row{
		{Label: "Length", Value: strconv.Itoa(st.ItemCount)},
		{Label: "Index", Value: strconv.Itoa(st.Selected)},
		{Label: "Window", Value: fmt.Sprintf("%d-%d", st.WindowStart, st.WindowStart+st.ViewportHeight-1)},
		{Label: "Scroll", Value: scrolling},
		{Label: "Direction", Value: st.Direction.String()},
		{Label: "Last", Value: components.ClampText(last, 40)},
	}
}

func (m Model) hints() []string {
	up, down := "↑/w", "↓/s"
	if m.vimKeys {
		up, down = "↑/w/k", "↓/s/j"
	}
	return []string{
		components.Hint(up, "Up"),
		components.Hint(down, "Down"),
		components.Hint("enter", "Select"),
		components.Hint("m", "Metrics"),
		components.Hint("ctrl+l", "Redraw"),
		components.Hint("q", "Quit"),
	}
}
