package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/listbox/internal/config"
	"github.com/gravitrone/listbox/internal/items"
	"github.com/gravitrone/listbox/internal/scroll"
	"github.com/gravitrone/listbox/internal/ui/components"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.OriginX = 1
	cfg.OriginY = 1
	return cfg
}

func newTestModel(t *testing.T, cfg *config.Config) Model {
	t.Helper()
	m, err := NewModel(items.Sample(), cfg, nil)
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestNewModelPaintsFirstWindow(t *testing.T) {
	m := newTestModel(t, testConfig())

	assert.Equal(t, "Item 1", m.canvas.Line(1))
	assert.Equal(t, "Item 2", m.canvas.Line(2))
	assert.Equal(t, "Item 3", m.canvas.Line(3))
	assert.Equal(t, 3, m.canvas.Rows())

	span, ok := m.canvas.SpanAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, scroll.DefaultColors().Selected, scroll.Pair{Fg: span.Fg, Bg: span.Bg})
}

func TestNewModelRejectsEmptyStore(t *testing.T) {
	_, err := NewModel(items.New(), nil, nil)
	assert.ErrorIs(t, err, items.ErrEmpty)
}

func TestNewModelRejectsBadColors(t *testing.T) {
	cfg := testConfig()
	cfg.Colors.Fg = "chartreuse"
	_, err := NewModel(items.Sample(), cfg, nil)
	assert.Error(t, err)
}

func TestModelConfirmReturnsSelection(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, cmd := press(t, m, keyDown, keyDown, keyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	sel, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, scroll.Selection{Text: "Item 3", Index: 2}, sel)
	assert.False(t, m.Aborted())
	assert.Contains(t, components.SanitizeText(m.View()), "Item selected: Item 3 | Index: 2")
}

func TestModelScrollsPastWindow(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, _ = press(t, m, keyDown, keyDown, keyDown)
	st := m.session.State()
	assert.Equal(t, 1, st.WindowStart)
	assert.Equal(t, 3, st.Selected)
	assert.Equal(t, "Item 2", m.canvas.Line(1))
	assert.Equal(t, "Item 4", m.canvas.Line(3))

	m, _ = press(t, m, keyUp, keyUp, keyUp)
	st = m.session.State()
	assert.Equal(t, 0, st.WindowStart)
	assert.Equal(t, 0, st.Selected)
}

func TestModelQuitAborts(t *testing.T) {
	m := newTestModel(t, testConfig())

	m, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.Aborted())
	_, ok := m.Result()
	assert.False(t, ok)
}

func TestModelVimKeys(t *testing.T) {
	cfg := testConfig()
	m := newTestModel(t, cfg)
	m, _ = press(t, m, runes("j"))
	assert.Equal(t, 0, m.session.State().Selected)

	cfg.VimKeys = true
	m = newTestModel(t, cfg)
	m, _ = press(t, m, runes("j"), runes("j"), runes("k"))
	assert.Equal(t, 1, m.session.State().Selected)
}

func TestModelRedrawRepaintsCanvas(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, keyDown)
	before := m.canvas.Render()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, before, m.canvas.Render())
	assert.Equal(t, 1, m.session.State().Selected)
}

func TestModelMetricsToggle(t *testing.T) {
	m := newTestModel(t, testConfig())
	view := components.SanitizeText(m.View())
	assert.False(t, m.showMetrics)
	assert.NotContains(t, view, "Length")
	assert.NotContains(t, view, "Window")
	assert.Contains(t, view, "Metrics", "hint bar always lists the toggle")

	m, _ = press(t, m, runes("m"), keyDown)
	view = components.SanitizeText(m.View())
	assert.True(t, m.showMetrics)
	assert.Contains(t, view, "Length")
	assert.Contains(t, view, "0-2")

	m, _ = press(t, m, runes("m"))
	assert.NotContains(t, components.SanitizeText(m.View()), "Length")
}

func TestModelIgnoresKeysAfterConfirm(t *testing.T) {
	m := newTestModel(t, testConfig())
	m, _ = press(t, m, keyEnter, keyDown, keyDown)

	sel, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, 0, sel.Index)
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel(t, testConfig())
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	m = next.(Model)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
	assert.Nil(t, m.Init())
}
