// Package styles provides shared lipgloss styles for UI components.
//
// Colors are ANSI 256 codes; the colorprofile writers installed by the
// CLI downsample or strip them depending on the terminal.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	Primary color.Color = lipgloss.Color("62")  // cyan/teal
	Accent  color.Color = lipgloss.Color("212") // pink
	Success color.Color = lipgloss.Color("82")  // green
	Error   color.Color = lipgloss.Color("196") // red
	Muted   color.Color = lipgloss.Color("240") // dark gray
	Normal  color.Color = lipgloss.Color("252") // light gray
	Info    color.Color = lipgloss.Color("244") // gray
	Warning color.Color = lipgloss.Color("214") // orange
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Info).
			Italic(true)

	// HeadingStyle is used for section titles in help and reports.
	HeadingStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Heat holds the cell colors of the timer heatmap, from no activity to the
// busiest bucket. Modeled on GitHub's contribution graph.
var Heat = []color.Color{
	lipgloss.Color("236"),
	lipgloss.Color("22"),
	lipgloss.Color("28"),
	lipgloss.Color("34"),
	lipgloss.Color("40"),
}

// HeatStyle returns the style for heatmap level, clamped to the Heat range.
func HeatStyle(level int) lipgloss.Style {
	level = max(0, min(level, len(Heat)-1))
	return lipgloss.NewStyle().Foreground(Heat[level])
}
