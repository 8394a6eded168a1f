package tui

import (
	"github.com/brizzai/map-signin/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#800707")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#800707")).
			Padding(0, 2)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9b9b9b")).
				Background(lipgloss.Color("#3a3a3a")).
				Padding(0, 2)

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#800707", Dark: "#f23a74"}).
				Render

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#626262", Dark: "#A49FA5"})

	mapFrameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5f8fbf"))

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bcbcbc")).
			Padding(0, 1).
			Align(lipgloss.Center)
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

var markerColors = map[catalog.Color]lipgloss.Color{
	catalog.ColorRed:    lipgloss.Color("#d0021b"),
	catalog.ColorGreen:  lipgloss.Color("#2e8b2e"),
	catalog.ColorBlue:   lipgloss.Color("#1e6bff"),
	catalog.ColorYellow: lipgloss.Color("#c9a800"),
	catalog.ColorPurple: lipgloss.Color("#8e44ad"),
	catalog.ColorBlack:  lipgloss.Color("#000000"),
}

// markerStyle renders a marker label: bold white text on the marker color
func markerStyle(c catalog.Color) lipgloss.Style {
	bg, ok := markerColors[c]
	if !ok {
		bg = lipgloss.Color("#444444")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(bg).
		Bold(true)
}
