package style

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether output is styled.
type ColorMode int

const (
	// ColorAuto styles output when writing to a capable terminal.
	ColorAuto ColorMode = iota
	// ColorAlways styles output unconditionally.
	ColorAlways
	// ColorNever emits plain text.
	ColorNever
)

// String returns the string representation of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "always", "on":
		return ColorAlways
	case "never", "off", "none":
		return ColorNever
	default:
		return ColorAuto
	}
}

// ShouldColor decides whether output to the given file gets styled.
func ShouldColor(mode ColorMode, output *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// Respect the NO_COLOR convention
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	// Check terminal color support
	return termenv.ColorProfile() != termenv.Ascii
}
