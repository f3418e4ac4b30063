package components

import "github.com/gravitrone/listbox/internal/sanitize"

// SanitizeText strips control characters and ANSI escape sequences from display strings.
func SanitizeText(input string) string {
	return sanitize.Text(input)
}

// SanitizeOneLine sanitizes input and folds newlines and tabs into spaces.
func SanitizeOneLine(input string) string {
	return sanitize.OneLine(input)
}
