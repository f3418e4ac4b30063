package scroll

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one of the 16 basic ANSI colours (0-7 normal, 8-15 bright).
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (c Color) String() string {
	if c < Black || c > BrightWhite {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor accepts a colour name ("blue", "bright-white", "bright_white"),
// a palette index ("0".."15") or an SGR code (30-37, 40-47, 90-97, 100-107).
func ParseColor(s string) (Color, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}

	n, err := strconv.Atoi(name)
	if err != nil {
		return 0, fmt.Errorf("unknown color %q", s)
	}
	switch {
	case n >= 0 && n <= 15:
		return Color(n), nil
	case n >= 30 && n <= 37:
		return Color(n - 30), nil
	case n >= 40 && n <= 47:
		return Color(n - 40), nil
	case n >= 90 && n <= 97:
		return Color(n - 90 + 8), nil
	case n >= 100 && n <= 107:
		return Color(n - 100 + 8), nil
	}
	return 0, fmt.Errorf("color code %d out of range", n)
}

// Pair is a foreground/background colour combination.
type Pair struct {
	Fg Color
	Bg Color
}

// Colors holds the two pairs used to paint items.
type Colors struct {
	Normal   Pair
	Selected Pair
}

// DefaultColors matches the classic white on black list with a bright white
// on blue highlight bar.
func DefaultColors() Colors {
	return Colors{
		Normal:   Pair{Fg: White, Bg: Black},
		Selected: Pair{Fg: BrightWhite, Bg: Blue},
	}
}
