// Package terminal guards the terminal the countdown draws on. A Session
// records the original terminal mode before the program changes it and puts
// it back on Close, whatever path the process takes out.
package terminal

import (
	"errors"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/stigoleg/countdown/internal/timer"
)

var errNotTerminal = errors.New("not a terminal")

// Session owns the input and output terminal for one run.
type Session struct {
	in     *os.File
	out    *os.File
	fd     int
	state  *term.State
	output *termenv.Output

	once     sync.Once
	closeErr error
}

// Open captures the current mode of in. Input that is not a terminal is an
// input error; output that is not a terminal is a terminal error.
func Open(in, out *os.File) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, timer.NewError(timer.ErrInput, "open "+in.Name(), errNotTerminal)
	}
	if !term.IsTerminal(int(out.Fd())) {
		return nil, timer.NewError(timer.ErrTerminal, "open "+out.Name(), errNotTerminal)
	}

	state, err := term.GetState(fd)
	if err != nil {
		return nil, timer.NewError(timer.ErrTerminal, "read terminal state", err)
	}

	return &Session{
		in:     in,
		out:    out,
		fd:     fd,
		state:  state,
		output: termenv.NewOutput(out),
	}, nil
}

// In returns the input terminal.
func (s *Session) In() *os.File {
	return s.in
}

// Out returns the output terminal.
func (s *Session) Out() *os.File {
	return s.out
}

// Close shows the cursor and restores the captured terminal mode. It is safe
// to call more than once.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.output.ShowCursor()
		if err := term.Restore(s.fd, s.state); err != nil {
			s.closeErr = timer.NewError(timer.ErrTerminal, "restore terminal", err)
		}
	})
	return s.closeErr
}
