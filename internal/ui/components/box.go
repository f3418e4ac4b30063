package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	borderColor = lipgloss.Color("#273540")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))
)

// Panel renders content in a rounded border. A non-empty title is set into
// the top border as " [ title ] ".
func Panel(title, content string, width int) string {
	style := panelStyle
	if width > 0 {
		style = style.Width(width - 2)
	}
	boxed := style.Render(content)
	if title == "" {
		return boxed
	}

	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middle := lineWidth - 2
	label := truncateRunes(fmt.Sprintf(" [ %s ] ", SanitizeOneLine(title)), middle)
	left := (middle - lipgloss.Width(label)) / 2
	right := middle - lipgloss.Width(label) - left

	edge := lipgloss.NewStyle().Foreground(borderColor)
	lines[0] = edge.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		panelTitleStyle.Render(label) +
		edge.Render(strings.Repeat(border.Top, right)+border.TopRight)
	return strings.Join(lines, "\n")
}

// Row is a single label/value line of a Table.
type Row struct {
	Label string
	Value string
}

// Table renders aligned label/value rows inside a titled panel.
func Table(title string, rows []Row, width int) string {
	if len(rows) == 0 {
		return ""
	}
	labelWidth := 0
	for _, r := range rows {
		if w := lipgloss.Width(SanitizeOneLine(r.Label)); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := SanitizeOneLine(r.Label)
		label += strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		lines = append(lines, labelStyle.Render(label)+"  "+valueStyle.Render(SanitizeOneLine(r.Value)))
	}
	return Panel(title, strings.Join(lines, "\n"), width)
}

// ClampText truncates text to width runes after sanitizing it.
func ClampText(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
