package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
╷   ╷ ┌──╴╶┬╴┌─┐ ┌─┐ ╷ ╷
│   │ └──┐ │ ├─┴┐│ │ └┬┘
└──╴╵ ╶──┘ ╵ └──┘└─┘ ┌┴┐`

// RenderBanner returns the styled title block with subtitle centered
// under it.
func RenderBanner(subtitle string) string {
	lines := splitLines(bannerArt)
	var rendered strings.Builder

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	for _, line := range lines {
		if line == "" {
			continue
		}
		rendered.WriteString(TitleStyle.Render(line) + "\n")
	}

	subtitleWidth := lipgloss.Width(subtitle)
	blockWidth := max(maxWidth, subtitleWidth)

	sub := SubtitleStyle.
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(subtitle)
	underline := DividerStyle.
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", subtitleWidth))

	return rendered.String() + sub + "\n" + underline + "\n"
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
