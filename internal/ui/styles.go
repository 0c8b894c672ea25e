package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette: default text plus one accent and one muted tone.
// Status coloring is left to unicode symbols.
var (
	// Accent style for deck names, tags, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7"))

	// Muted style for ids, counts, secondary info
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for headers
	Bold = lipgloss.NewStyle().Bold(true)
)

// Plain reports whether styled output should be suppressed: stdout is
// not a terminal, or NO_COLOR is set.
func Plain() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return !isatty.IsTerminal(os.Stdout.Fd())
}

// Render applies a style unless output is plain.
func Render(style lipgloss.Style, s string) string {
	if Plain() {
		return s
	}
	return style.Render(s)
}
