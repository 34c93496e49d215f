// Package ui provides the terminal user interface for the countdown.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle        lipgloss.AdaptiveColor
	Highlight     lipgloss.AdaptiveColor
	Error         lipgloss.AdaptiveColor
	BarBackground lipgloss.Color
	GradientStart string
	GradientEnd   string
}

var defaultColors = Colors{
	Subtle:        lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight:     lipgloss.AdaptiveColor{Light: "#663FF2", Dark: "#7D56F4"},
	Error:         lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
	BarBackground: lipgloss.Color("#2D2D2D"),
	GradientStart: "#663FF2",
	GradientEnd:   "#F541CC",
}

// Style represents a collection of styles used in the application
type Style struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Bar     lipgloss.Style
	Percent lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle()

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Label: base.
			Foreground(defaultColors.Subtle),

		Value: base.
			Bold(true),

		Bar: base.
			Background(defaultColors.BarBackground),

		Percent: base.
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			PaddingLeft(1).
			PaddingRight(1).
			Foreground(defaultColors.Error),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
