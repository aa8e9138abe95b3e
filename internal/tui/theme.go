package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorSurface0 lipgloss.Color = "#313244"
	colorSurface1 lipgloss.Color = "#45475a"
	colorError    lipgloss.Color = "#f38ba8"
)

type styles struct {
	display lipgloss.Style
	status  lipgloss.Style
	digit   lipgloss.Style
	op      lipgloss.Style
	equals  lipgloss.Style
	clear   lipgloss.Style
}

func newStyles(accent string) styles {
	acc := lipgloss.Color(accent)
	button := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Foreground(colorText).
		Background(colorSurface0)
	return styles{
		display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(acc).
			Foreground(colorText).
			Bold(true).
			Width(gridWidth()-2).
			Padding(0, 1).
			Align(lipgloss.Right),
		status: lipgloss.NewStyle().Foreground(colorMuted),
		digit:  button,
		op:     button.Foreground(acc).Bold(true),
		equals: button.Foreground(colorBase).Background(acc).Bold(true),
		clear:  button.Foreground(colorError).Background(colorSurface1),
	}
}
