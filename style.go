package main

import "github.com/charmbracelet/lipgloss"

const (
	axisColor    = "6" // cyan, as the labels under the chart
	overlayColor = "236"
)

var (
	appstyle     = lipgloss.NewStyle().Margin(1, 2)
	captionStyle = lipgloss.NewStyle().Bold(true)
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(axisColor))
)

// barStyle paints the depth bars in the configured color.
func barStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}
