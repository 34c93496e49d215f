package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/countdown/internal/timer"
)

// Model is the render loop of one countdown run.
type Model struct {
	spec     timer.Spec
	run      timer.RunState
	clock    timer.Clock
	keys     KeyMap
	help     help.Model
	gradient []lipgloss.Color
	width    int
	frame    timer.Frame
	outcome  timer.Outcome
	drawErr  error
}

// NewModel returns a running model for spec, measuring elapsed time from
// run with clock.
func NewModel(spec timer.Spec, run timer.RunState, clock timer.Clock) Model {
	if clock == nil {
		clock = timer.SystemClock
	}
	return Model{
		spec:     spec,
		run:      run,
		clock:    clock,
		keys:     DefaultKeys(),
		help:     NewHelpModel(),
		gradient: DefaultGradient(),
		frame:    timer.NewFrame(spec.Duration, 0),
		outcome:  timer.Running,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// Outcome returns the loop state.
func (m Model) Outcome() timer.Outcome {
	return m.outcome
}

// Frame returns the values drawn by the latest frame.
func (m Model) Frame() timer.Frame {
	return m.frame
}

// TimeRemaining returns the remaining duration as of the latest frame.
func (m Model) TimeRemaining() time.Duration {
	if m.outcome != timer.Running {
		return 0
	}
	return m.frame.Remaining
}
