package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/countdown/internal/timer"
)

// tickMsg closes one poll window.
type tickMsg time.Time

// drawFailedMsg reports that a frame could not be written to the terminal.
type drawFailedMsg struct {
	err error
}

// Update handles messages and updates the model accordingly. Once the
// model has left the Running state, or a frame failed to draw, it ignores
// every message.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	if m.outcome.Done() || m.drawErr != nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case drawFailedMsg:
		m.drawErr = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			m.outcome = timer.CancelledByUser
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tickMsg:
		elapsed := m.run.Elapsed(m.clock)
		if elapsed >= m.spec.Duration {
			m.frame = timer.NewFrame(m.spec.Duration, elapsed)
			m.outcome = timer.CompletedNormally
			return m, tea.Quit
		}
		m.frame = timer.NewFrame(m.spec.Duration, elapsed)
		return m, tick()
	}

	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(timer.PollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
