//go:build windows
// +build windows

package integration

import (
	"errors"
	"os"
	"syscall"
)

func getSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}

func interrupt(*os.Process, string) error {
	return errors.New("signals cannot be sent to a child process on windows")
}

const canInterrupt = false
