package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.True(t, isQuit(runes("q")))
	assert.False(t, isQuit(runes("a")))
}

func TestIsEnter(t *testing.T) {
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isEnter(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestIsDown(t *testing.T) {
	assert.True(t, isDown(tea.KeyMsg{Type: tea.KeyDown}, false))
	assert.True(t, isDown(runes("s"), false))
	assert.False(t, isDown(tea.KeyMsg{Type: tea.KeyUp}, false))
	assert.False(t, isDown(runes("j"), false))
	assert.True(t, isDown(runes("j"), true))
}

func TestIsUp(t *testing.T) {
	assert.True(t, isUp(tea.KeyMsg{Type: tea.KeyUp}, false))
	assert.True(t, isUp(runes("w"), false))
	assert.False(t, isUp(tea.KeyMsg{Type: tea.KeyDown}, false))
	assert.False(t, isUp(runes("k"), false))
	assert.True(t, isUp(runes("k"), true))
}

func TestIsRedraw(t *testing.T) {
	assert.True(t, isRedraw(tea.KeyMsg{Type: tea.KeyCtrlL}))
	assert.False(t, isRedraw(runes("l")))
}

func TestIsKey(t *testing.T) {
	assert.True(t, isKey(runes("m"), "m"))
	assert.True(t, isKey(tea.KeyMsg{Type: tea.KeyLeft}, "left"))
	assert.False(t, isKey(runes("s"), "a"))
	assert.False(t, isKey(tea.KeyMsg{Type: tea.KeyLeft}, "right"))
}

func TestIsMetrics(t *testing.T) {
	assert.True(t, isMetrics(runes("m")))
	assert.False(t, isMetrics(runes("n")))
}
