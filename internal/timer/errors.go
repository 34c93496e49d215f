package timer

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the render loop. None of them is retried.
var (
	ErrInput    = errors.New("input error")
	ErrTerminal = errors.New("terminal error")
	ErrRender   = errors.New("render error")
)

// Error wraps a terminal-session failure with its kind and the operation
// that failed. errors.Is matches both the kind and the cause.
type Error struct {
	Kind error
	Op   string
	Err  error
}

// NewError builds an *Error of the given kind.
func NewError(kind error, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s] %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
