// Package cleanup runs registered release steps exactly once, newest first,
// with a bound on how long they may take.
package cleanup

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stigoleg/countdown/internal/logger"
)

// ErrTimeout is reported when the release steps do not finish in time.
var ErrTimeout = errors.New("cleanup timeout exceeded")

type step struct {
	name string
	fn   func() error
}

// Manager collects release steps and runs them once.
type Manager struct {
	mu      sync.Mutex
	steps   []step
	timeout time.Duration
	once    sync.Once
	errs    []error
}

// NewManager creates a new cleanup manager with the specified timeout
func NewManager(timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Manager{
		timeout: timeout,
	}
}

// RegisterFunc registers a cleanup function
func (m *Manager) RegisterFunc(name string, fn func() error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, step{name: name, fn: fn})
}

// Execute runs every registered step in reverse registration order. Only the
// first call does any work; later calls return the same errors.
func (m *Manager) Execute() []error {
	m.once.Do(func() {
		m.mu.Lock()
		steps := m.steps
		m.mu.Unlock()
		m.errs = release(steps, m.timeout)
	})
	return m.errs
}

// Guard runs fn and then Execute, also when fn panics. Release errors are
// joined to the error fn returned; a panic is re-raised once every step ran.
func (m *Manager) Guard(fn func() error) (err error) {
	defer func() {
		r := recover()
		err = errors.Join(append([]error{err}, m.Execute()...)...)
		if r != nil {
			panic(r)
		}
	}()
	return fn()
}

func release(steps []step, timeout time.Duration) []error {
	if len(steps) == 0 {
		return nil
	}
	log := logger.Component("cleanup")

	done := make(chan []error, 1)
	go func() {
		var errs []error
		for i := len(steps) - 1; i >= 0; i-- {
			if err := steps[i].run(); err != nil {
				log.Error().Err(err).Str("resource", steps[i].name).Msg("cleanup failed")
				errs = append(errs, err)
				continue
			}
			log.Debug().Str("resource", steps[i].name).Msg("cleaned up")
		}
		done <- errs
	}()

	select {
	case errs := <-done:
		return errs
	case <-time.After(timeout):
		log.Error().Dur("timeout", timeout).Msg("cleanup timed out, some resources may not have been released")
		return []error{ErrTimeout}
	}
}

func (s step) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic cleaning up %s: %v", s.name, r)
		}
	}()
	if err := s.fn(); err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	return nil
}
