//go:build !windows
// +build !windows

package integration

import (
	"os"
	"syscall"
)

func getSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}

func interrupt(proc *os.Process, sig string) error {
	switch sig {
	case "SIGTERM":
		return proc.Signal(syscall.SIGTERM)
	case "SIGQUIT":
		return proc.Signal(syscall.SIGQUIT)
	default:
		return proc.Signal(syscall.SIGINT)
	}
}

const canInterrupt = true
