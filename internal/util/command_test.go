package util

import (
	"runtime"
	"testing"
)

func TestHasCommand(t *testing.T) {
	shell := "sh"
	if runtime.GOOS == "windows" {
		shell = "cmd"
	}

	tests := []struct {
		name     string
		command  string
		expected bool
	}{
		{
			name:     "system shell exists",
			command:  shell,
			expected: true,
		},
		{
			name:     "nonexistent command",
			command:  "this-command-definitely-does-not-exist-12345",
			expected: false,
		},
		{
			name:     "empty string",
			command:  "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasCommand(tt.command)
			if got != tt.expected {
				t.Errorf("HasCommand(%q) = %v, want %v", tt.command, got, tt.expected)
			}
		})
	}
}
