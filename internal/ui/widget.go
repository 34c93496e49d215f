package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/stigoleg/countdown/internal/timer"
)

// TimerView is the drawable value built fresh for every frame.
type TimerView struct {
	Width     int
	Percent   int
	Remaining time.Duration
	StartedAt time.Time
	Title     string
	Format    timer.ClockFormat
	Gradient  []lipgloss.Color
}

// Render paints the title, start time, time left and the progress bar, one
// per row. A zero width draws an empty bar row.
func (v TimerView) Render() string {
	title := v.Title
	if title == "" {
		title = timer.DefaultName
	}

	rows := []string{
		Current.Title.Render(title),
		Current.Label.Render("Started at: ") + Current.Value.Render(FormatStart(v.StartedAt, v.Format)),
		Current.Label.Render("Time left: ") + Current.Value.Render(FormatRemaining(v.Remaining)),
	}
	if v.Width > 0 {
		for i, row := range rows {
			rows[i] = ansi.Truncate(row, v.Width, "")
		}
	}
	rows = append(rows, v.bar())
	return strings.Join(rows, "\n")
}

func (v TimerView) bar() string {
	if v.Width <= 0 {
		return ""
	}
	percent := clampPercent(v.Percent)
	filled := BarCells(v.Width, percent, len(v.Gradient))

	label := []rune(fmt.Sprintf("%d%%", percent))
	labelStart := v.Width - len(label)

	var b strings.Builder
	for i := 0; i < v.Width; i++ {
		cell := " "
		style := Current.Bar
		if i >= labelStart {
			cell = string(label[i-labelStart])
			style = Current.Percent.Background(defaultColors.BarBackground)
		}
		if i < len(filled) {
			style = style.Background(v.Gradient[filled[i]])
		}
		b.WriteString(style.Render(cell))
	}
	return b.String()
}

// BarCells returns, for every filled cell of a bar of the given width, the
// gradient index its color is taken from. The filled cell count is
// floor(percent/100 * width) and cell i maps to floor(i/width * gradientLen).
func BarCells(width, percent, gradientLen int) []int {
	if width <= 0 || gradientLen <= 0 {
		return nil
	}
	filled := clampPercent(percent) * width / 100
	cells := make([]int, filled)
	for i := range cells {
		idx := i * gradientLen / width
		if idx >= gradientLen {
			idx = gradientLen - 1
		}
		cells[i] = idx
	}
	return cells
}

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
