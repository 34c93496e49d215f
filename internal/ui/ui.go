package ui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/countdown/internal/logger"
	"github.com/stigoleg/countdown/internal/notify"
	"github.com/stigoleg/countdown/internal/timer"
)

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	input     io.Reader
	output    io.Writer
	altScreen bool
	clock     timer.Clock
	notifier  notify.Notifier
}

func defaultRunOptions() runOptions {
	return runOptions{
		input:     os.Stdin,
		output:    os.Stdout,
		altScreen: true,
		clock:     timer.SystemClock,
		notifier:  notify.Nop,
	}
}

// WithInput sets the reader key events are read from.
func WithInput(r io.Reader) RunOption {
	return func(o *runOptions) {
		o.input = r
	}
}

// WithOutput sets the writer frames are drawn to.
func WithOutput(w io.Writer) RunOption {
	return func(o *runOptions) {
		o.output = w
	}
}

// WithAltScreen enables or disables the alternate screen buffer.
func WithAltScreen(enabled bool) RunOption {
	return func(o *runOptions) {
		o.altScreen = enabled
	}
}

// WithClock replaces the time source.
func WithClock(c timer.Clock) RunOption {
	return func(o *runOptions) {
		o.clock = c
	}
}

// WithNotifier sets where start and finish notifications go.
func WithNotifier(n notify.Notifier) RunOption {
	return func(o *runOptions) {
		o.notifier = n
	}
}

// Run counts down spec.Duration until it elapses, the user cancels, or ctx
// is done. Cancellation, by key or by ctx, is reported as CancelledByUser
// with a nil error and sends no finish notification.
func Run(ctx context.Context, spec timer.Spec, opts ...RunOption) (timer.Outcome, error) {
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := logger.Component("timer")

	run := timer.Start(o.clock)
	log.Info().
		Dur("duration", spec.Duration).
		Str("name", spec.Title()).
		Time("started_at", run.StartWallClock).
		Msg("timer started")

	if spec.Notify {
		o.notifier.Notify(timer.DefaultName, spec.Title()+" has started.")
	}

	var read, draw failure
	teaOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(watchInput(o.input, &read)),
		tea.WithOutput(watchOutput(o.output, &draw)),
		tea.WithoutSignalHandler(),
	}
	if o.altScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(spec, run, o.clock), teaOpts...)
	draw.onFail = func(err error) {
		// the renderer holds its lock while writing, so never block it
		go p.Send(drawFailedMsg{err: err})
	}

	final, err := p.Run()
	if drawErr := draw.Err(); drawErr != nil {
		log.Error().Err(drawErr).Msg("timer aborted")
		return timer.Running, timer.NewError(timer.ErrRender, "draw frame", drawErr)
	}
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrProgramPanic) {
			log.Info().Msg("timer interrupted")
			return timer.CancelledByUser, nil
		}
		log.Error().Err(err).Msg("timer aborted")
		return timer.Running, classify(err, read.Err())
	}

	outcome := timer.Running
	if m, ok := final.(Model); ok {
		outcome = m.Outcome()
	}
	log.Info().Stringer("outcome", outcome).Dur("elapsed", run.Elapsed(o.clock)).Msg("timer finished")

	if outcome == timer.CompletedNormally && spec.Notify {
		o.notifier.Notify(timer.DefaultName, spec.Title()+" is over!")
	}
	return outcome, nil
}

// classify maps a program failure onto the loop's error kinds. readErr is
// the first failure seen on the input stream.
func classify(err, readErr error) error {
	switch {
	case errors.Is(err, tea.ErrProgramPanic):
		return timer.NewError(timer.ErrRender, "draw frame", err)
	case readErr != nil:
		return timer.NewError(timer.ErrInput, "read input", err)
	}
	return timer.NewError(timer.ErrTerminal, "run program", err)
}
