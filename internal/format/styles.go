package format

import "github.com/charmbracelet/lipgloss"

// Styles is the color palette for highlighted JSON output. Lipgloss
// degrades to plain text when the output is not a TTY.
type Styles struct {
	// Key styles object keys.
	Key lipgloss.Style

	// String styles string values.
	String lipgloss.Style

	// Number styles numeric values.
	Number lipgloss.Style

	// Literal styles true, false and null.
	Literal lipgloss.Style

	// Punct styles braces, brackets, commas and colons.
	Punct lipgloss.Style
}

// DefaultStyles returns the default highlight palette.
func DefaultStyles() Styles {
	return Styles{
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		String:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Number:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Literal: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Punct:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// PlainStyles returns a palette that renders text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Key:     plain,
		String:  plain,
		Number:  plain,
		Literal: plain,
		Punct:   plain,
	}
}
