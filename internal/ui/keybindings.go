package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c", "esc")
}

func isUp(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "k") {
		return true
	}
	return isKey(msg, "up", "w")
}

func isDown(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "j") {
		return true
	}
	return isKey(msg, "down", "s")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isRedraw(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+l")
}

func isMetrics(msg tea.KeyMsg) bool {
	return isKey(msg, "m")
}
