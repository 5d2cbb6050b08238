package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/snxml/snxml/pkg/document"
	"github.com/snxml/snxml/pkg/network"
	"github.com/snxml/snxml/pkg/validator"
)

// Renderer defines the interface for rendering command output
type Renderer interface {
	RenderReport(source string, report *validator.Report) string
	RenderStats(title string, stats []network.UserStat) string
	RenderSuggestions(userID string, suggestions []network.Suggestion) string
	RenderSearchResults(results []document.SearchResult) string
	RenderError(err error) string
}

// NewRenderer picks a renderer for the given color mode and output stream.
func NewRenderer(mode ColorMode, output *os.File) Renderer {
	if ShouldColor(mode, output) {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderReport renders a validation report with one line per error
func (r *TerminalRenderer) RenderReport(source string, report *validator.Report) string {
	if report.IsValid {
		return fmt.Sprintf("%s %s is valid", SuccessIndicator, NameStyle.Render(source))
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s: %s\n\n",
		ErrorIndicator,
		NameStyle.Render(source),
		ErrorStyle.Render(fmt.Sprintf("%d error(s)", report.ErrorCount))))

	for _, e := range report.Errors {
		kind := KindStyle(e.Kind).Sprintf("%-9s", string(e.Kind))
		result.WriteString(Indent(fmt.Sprintf("%s %s %s", KindIndicator(e.Kind), kind, e.String()), 1) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderStats renders a ranked list of users with counts
func (r *TerminalRenderer) RenderStats(title string, stats []network.UserStat) string {
	if len(stats) == 0 {
		return MutedStyle.Render("No users found")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render(title) + "\n\n")

	for i, s := range stats {
		line := fmt.Sprintf("%s %s %s %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			NameStyle.Render(s.Name),
			IDStyle.Render("(id "+s.UserID+")"),
			MutedStyle.Render(fmt.Sprintf("%d", s.Count)))
		result.WriteString(Indent(line, 1) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSuggestions renders follow recommendations for a user
func (r *TerminalRenderer) RenderSuggestions(userID string, suggestions []network.Suggestion) string {
	if len(suggestions) == 0 {
		return MutedStyle.Render(fmt.Sprintf("No suggestions for user %s", userID))
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Suggested follows for user "+userID) + "\n\n")

	for _, s := range suggestions {
		line := fmt.Sprintf("%s %s %s %s",
			InfoIndicator,
			NameStyle.Render(s.Name),
			IDStyle.Render("(id "+s.UserID+")"),
			MutedStyle.Render(fmt.Sprintf("score %d", s.Score)))
		result.WriteString(Indent(line, 1) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSearchResults renders matching posts with their authors
func (r *TerminalRenderer) RenderSearchResults(results []document.SearchResult) string {
	if len(results) == 0 {
		return MutedStyle.Render("No matching posts")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render(fmt.Sprintf("%d matching post(s)", len(results))) + "\n\n")

	for _, res := range results {
		header := fmt.Sprintf("%s %s %s",
			InfoIndicator,
			NameStyle.Render(res.UserName),
			IDStyle.Render("(id "+res.UserID+")"))
		result.WriteString(header + "\n")
		result.WriteString(Indent(res.Body, 1) + "\n")
		if len(res.Topics) > 0 {
			result.WriteString(Indent(MutedStyle.Render("topics: "+strings.Join(res.Topics, ", ")), 1) + "\n")
		}
		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error message. SnxmlError messages already carry
// their code, so only the indicator is added here.
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", ErrorIndicator, ErrorStyle.Render(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderReport renders a plain validation report
func (r *PlainRenderer) RenderReport(source string, report *validator.Report) string {
	if report.IsValid {
		return fmt.Sprintf("%s is valid", source)
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s: %d error(s)\n", source, report.ErrorCount))
	for _, e := range report.Errors {
		result.WriteString(fmt.Sprintf("  [%s] %s\n", e.Kind, e.String()))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderStats renders a plain ranked list
func (r *PlainRenderer) RenderStats(title string, stats []network.UserStat) string {
	if len(stats) == 0 {
		return "No users found"
	}

	var result strings.Builder
	result.WriteString(title + "\n")
	for i, s := range stats {
		result.WriteString(fmt.Sprintf("  %d. %s (id %s): %d\n", i+1, s.Name, s.UserID, s.Count))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSuggestions renders plain follow recommendations
func (r *PlainRenderer) RenderSuggestions(userID string, suggestions []network.Suggestion) string {
	if len(suggestions) == 0 {
		return fmt.Sprintf("No suggestions for user %s", userID)
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Suggested follows for user %s:\n", userID))
	for _, s := range suggestions {
		result.WriteString(fmt.Sprintf("  - %s (id %s): score %d\n", s.Name, s.UserID, s.Score))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSearchResults renders plain matching posts
func (r *PlainRenderer) RenderSearchResults(results []document.SearchResult) string {
	if len(results) == 0 {
		return "No matching posts"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%d matching post(s):\n", len(results)))
	for _, res := range results {
		result.WriteString(fmt.Sprintf("  - %s (id %s): %s\n", res.UserName, res.UserID, res.Body))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
