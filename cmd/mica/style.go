package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorWarn  = lipgloss.Color("#F59E0B")
	colorOk    = lipgloss.Color("#10B981")
	colorMuted = lipgloss.Color("#6B7280")
)

var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorOk)

	TraceStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// painter renders with a style only when colors are enabled in the settings.
type painter struct {
	color bool
}

func (p painter) paint(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}
