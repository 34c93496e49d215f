package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientSteps is the length of the default gradient table.
const GradientSteps = 100

// NewGradient interpolates steps colors from start towards end in RGB.
// Entry i sits at i/steps along the way, so the end color itself is never
// reached. Unparseable endpoints fall back to the default colors.
func NewGradient(start, end string, steps int) []lipgloss.Color {
	if steps <= 0 {
		return nil
	}
	from, err := colorful.Hex(start)
	if err != nil {
		from, _ = colorful.Hex(defaultColors.GradientStart)
	}
	to, err := colorful.Hex(end)
	if err != nil {
		to, _ = colorful.Hex(defaultColors.GradientEnd)
	}

	gradient := make([]lipgloss.Color, steps)
	for i := range gradient {
		c := from.BlendRgb(to, float64(i)/float64(steps))
		gradient[i] = lipgloss.Color(c.Clamped().Hex())
	}
	return gradient
}

// DefaultGradient returns the fixed purple-to-pink ramp of the progress bar.
func DefaultGradient() []lipgloss.Color {
	return NewGradient(defaultColors.GradientStart, defaultColors.GradientEnd, GradientSteps)
}
