package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, same palette as the rest of the app.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
)

// Theme holds the styles used to draw the picker.
type Theme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Prefix   lipgloss.Style
	Name     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorText),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		Prefix:   lipgloss.NewStyle().Bold(true).Foreground(colorText),
		Name:     lipgloss.NewStyle().Foreground(colorSubtext0),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorLavender).Background(colorSurface0),
		Muted:    lipgloss.NewStyle().Foreground(colorOverlay1),
		Help:     lipgloss.NewStyle().Foreground(colorOverlay1),
	}
}
