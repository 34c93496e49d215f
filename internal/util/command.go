// Package util holds small helpers shared by the command line and the
// notification sender.
package util

import "os/exec"

// HasCommand checks if a command is available in the system PATH.
func HasCommand(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}
