// Package styles provides shared lipgloss styles for flow's prompts.
package styles

import "charm.land/lipgloss/v2"

// Colors used across the interactive prompts.
var (
	// Accent highlights the selected/active item (pink)
	Accent = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for hints and secondary text (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)
