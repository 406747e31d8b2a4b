// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// SuccessColor indicates fully settled obligations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates obligations still within their grace period.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// LateColor indicates obligations paid after the due day.
	LateColor = lipgloss.Color("#FFA94D") // Orange
	// ErrorColor indicates overdue obligations.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	// SuccessStyle formats up-to-date statuses.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats in-grace pending statuses.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// LateStyle formats paid-late statuses.
	LateStyle = lipgloss.NewStyle().
			Foreground(LateColor)

	// ErrorStyle formats overdue statuses.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle is used for bordered obligation cards.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

// Icons.
const (
	OKIcon      = "✓"
	PendingIcon = "◌"
	LateIcon    = "⚠"
	OverdueIcon = "✗"
)
