package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, package identifiers.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "passed" step status.
	ColorGreen = lipgloss.Color("82")

	// ColorBoldRed is used for the "failed" step status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, file paths, package names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (rendering, installing, linting, testing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, prefixes).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Step status constants.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// StatusStyle returns the lipgloss style for a given step status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusPassed:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// minStepColumnWidth is the minimum width for the step name column before
// the status suffix, so status words align across the run.
const minStepColumnWidth = 32

// FormatStepLine renders a step name with a right-aligned, color-coded
// status suffix.
func FormatStepLine(name, status string) string {
	padding := minStepColumnWidth - len(name)
	if padding < 2 {
		padding = 2
	}

	styledName := StyleAction.Render(name)
	styledStatus := StatusStyle(status).Render(status)

	return styledName + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCrossmark renders a red cross with a message for stdout output.
func FormatCrossmark(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}

// FormatCreatedFile renders the per-file confirmation line emitted for
// each rendered file.
func FormatCreatedFile(path string) string {
	return FormatCheckmark(fmt.Sprintf("created %s", StyleNoun.Render(path)))
}
