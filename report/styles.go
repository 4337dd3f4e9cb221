package report

import "github.com/charmbracelet/lipgloss"

// Color palette, following open-platform-model-cli's "named constants,
// never inline lipgloss.Color literals" convention.
var (
	colorGreen  = lipgloss.Color("82")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("196")
	colorDim    = lipgloss.Color("240")
)

var (
	styleSat    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleUnsat  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleError  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "SAT":
		return styleSat
	case "UNSAT":
		return styleUnsat
	default:
		return styleError
	}
}
