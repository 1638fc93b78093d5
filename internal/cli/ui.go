package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors used across commands and the preview TUI.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// Shared styles.
var (
	// StyleTitle renders section titles.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim renders muted helper text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders emphasized values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess marks builtin (always available) entries.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)
