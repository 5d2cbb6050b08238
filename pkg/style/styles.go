package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/snxml/snxml/pkg/validator"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	NameStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	IDStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor)
)

// Indicator glyphs
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
)

// KindIndicator returns the glyph for a validation error kind: semantic
// defects are warnings (the document still parses), file errors are
// informational, everything else is a hard error.
func KindIndicator(kind validator.Kind) string {
	switch kind {
	case validator.KindSemantic:
		return WarningIndicator
	case validator.KindFile:
		return InfoIndicator
	default:
		return ErrorIndicator
	}
}

// KindStyle returns the appropriate pterm style for a validation error kind.
func KindStyle(kind validator.Kind) *pterm.Style {
	switch kind {
	case validator.KindSyntax:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case validator.KindStructure:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	case validator.KindSemantic:
		return pterm.NewStyle(pterm.FgMagenta)
	case validator.KindFile:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
