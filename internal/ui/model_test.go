package ui

import (
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/countdown/internal/timer"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestModel(d time.Duration) (Model, *fakeClock) {
	clock := newFakeClock()
	spec := timer.Spec{Duration: d, Name: "Tea"}
	return NewModel(spec, timer.Start(clock), clock), clock
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel(10 * time.Second)

	assert.Equal(t, timer.Running, m.Outcome())
	assert.Equal(t, 0, m.Frame().Percent)
	assert.Equal(t, 10*time.Second, m.TimeRemaining())
	assert.NotNil(t, m.Init())
}

func TestTickAdvancesFrame(t *testing.T) {
	m, clock := newTestModel(10 * time.Second)

	clock.Advance(2500 * time.Millisecond)
	m, cmd := Update(tickMsg(clock.Now()), m)

	assert.Equal(t, timer.Running, m.Outcome())
	assert.Equal(t, 25, m.Frame().Percent)
	assert.Equal(t, 7500*time.Millisecond, m.TimeRemaining())
	require.NotNil(t, cmd)
	assert.False(t, isQuit(cmd))
}

func TestTickCompletes(t *testing.T) {
	m, clock := newTestModel(2 * time.Second)

	clock.Advance(2 * time.Second)
	m, cmd := Update(tickMsg(clock.Now()), m)

	assert.Equal(t, timer.CompletedNormally, m.Outcome())
	assert.True(t, isQuit(cmd))
	assert.Empty(t, View(m))
	assert.Equal(t, time.Duration(0), m.TimeRemaining())
}

func TestZeroDurationCompletesOnFirstTick(t *testing.T) {
	m, clock := newTestModel(0)

	m, cmd := Update(tickMsg(clock.Now()), m)

	assert.Equal(t, timer.CompletedNormally, m.Outcome())
	assert.True(t, isQuit(cmd))
}

func TestCancelKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want timer.Outcome
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, timer.CancelledByUser},
		{"Q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}}, timer.CancelledByUser},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, timer.CancelledByUser},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, timer.CancelledByUser},
		{"other rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, timer.Running},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, timer.Running},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(10 * time.Second)
			got, cmd := Update(tt.msg, m)
			assert.Equal(t, tt.want, got.Outcome())
			assert.Equal(t, tt.want == timer.CancelledByUser, isQuit(cmd))
		})
	}
}

func TestCancelMidRun(t *testing.T) {
	m, clock := newTestModel(10 * time.Second)

	clock.Advance(500 * time.Millisecond)
	m, _ = Update(tickMsg(clock.Now()), m)
	require.Equal(t, 5, m.Frame().Percent)

	m, cmd := Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, m)
	assert.Equal(t, timer.CancelledByUser, m.Outcome())
	assert.True(t, isQuit(cmd))
	assert.Empty(t, View(m), "no frame is drawn after cancellation")

	// later ticks do not revive the loop
	clock.Advance(20 * time.Second)
	m, cmd = Update(tickMsg(clock.Now()), m)
	assert.Equal(t, timer.CancelledByUser, m.Outcome())
	assert.Nil(t, cmd)
}

func TestDrawFailureStopsLoop(t *testing.T) {
	m, clock := newTestModel(10 * time.Second)

	m, cmd := Update(drawFailedMsg{err: errors.New("input/output error")}, m)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, timer.Running, m.Outcome(), "a failed draw is not a completion")
	assert.Empty(t, View(m))

	clock.Advance(20 * time.Second)
	m, cmd = Update(tickMsg(clock.Now()), m)
	assert.Nil(t, cmd)
	assert.Equal(t, timer.Running, m.Outcome())
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel(10 * time.Second)

	m, cmd := Update(tea.WindowSizeMsg{Width: 50, Height: 10}, m)

	assert.Nil(t, cmd)
	assert.Equal(t, 50, m.width)
}

func TestFramesAreMonotonic(t *testing.T) {
	m, clock := newTestModel(3 * time.Second)

	last := 0
	for m.Outcome() == timer.Running {
		clock.Advance(timer.PollInterval)
		m, _ = Update(tickMsg(clock.Now()), m)
		p := m.Frame().Percent
		require.GreaterOrEqual(t, p, last)
		require.LessOrEqual(t, p, 100)
		if m.Outcome() == timer.Running {
			require.Less(t, p, 100)
		}
		last = p
	}
	assert.Equal(t, timer.CompletedNormally, m.Outcome())
	assert.Equal(t, 100, last)
}

func TestRunningView(t *testing.T) {
	m, clock := newTestModel(90 * time.Second)
	m, _ = Update(tea.WindowSizeMsg{Width: 40, Height: 10}, m)
	clock.Advance(45 * time.Second)
	m, _ = Update(tickMsg(clock.Now()), m)

	view := View(m)

	assert.Contains(t, view, "Tea")
	assert.Contains(t, view, "Started at: 10:00:00")
	assert.Contains(t, view, "Time left: 00h:00m:45s")
	assert.Contains(t, view, "50%")
	assert.Contains(t, view, "cancel")
}
