package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/countdown/internal/timer"
	"github.com/stigoleg/countdown/internal/util"
)

// isolate keeps a developer's own config file and environment out of the
// test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	for _, key := range []string{"NAME", "NOTIFY", "FORMAT", "LOG_FILE", "DEBUG", "CONFIG"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
}

func execute(t *testing.T, args ...string) (*Config, bool, error) {
	t.Helper()
	var got *Config
	called := false
	cmd := NewCommand("test-version", func(_ *cobra.Command, cfg *Config) error {
		called = true
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	err := cmd.Execute()
	return got, called, err
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "bare seconds with defaults",
			args: []string{"2"},
			want: Config{Duration: 2 * time.Second, Notify: true, Format: timer.Clock24h},
		},
		{
			name: "compound duration",
			args: []string{"1h30m"},
			want: Config{Duration: 5400 * time.Second, Notify: true, Format: timer.Clock24h},
		},
		{
			name: "name and 12h format",
			args: []string{"45m", "--name", "Deep work", "-f", "12h"},
			want: Config{Duration: 45 * time.Minute, Name: "Deep work", Notify: true, Format: timer.Clock12h},
		},
		{
			name: "short name flag",
			args: []string{"-n", "Tea", "500ms"},
			want: Config{Duration: 500 * time.Millisecond, Name: "Tea", Notify: true, Format: timer.Clock24h},
		},
		{
			name: "notifications disabled",
			args: []string{"25m", "--notify=false"},
			want: Config{Duration: 25 * time.Minute, Notify: false, Format: timer.Clock24h},
		},
		{
			name: "logging",
			args: []string{"10", "--debug", "--log-file", "/tmp/countdown.log"},
			want: Config{Duration: 10 * time.Second, Notify: true, Format: timer.Clock24h, LogFile: "/tmp/countdown.log", Debug: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			cfg, called, err := execute(t, tt.args...)

			require.NoError(t, err)
			require.True(t, called)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{name: "malformed duration", args: []string{"banana"}, target: util.ErrInvalidDuration},
		{name: "negative duration", args: []string{"-5"}},
		{name: "unknown unit", args: []string{"5x"}, target: util.ErrInvalidDuration},
		{name: "bad format", args: []string{"10", "--format", "36h"}, target: timer.ErrInvalidFormat},
		{name: "missing duration", args: []string{}},
		{name: "two durations", args: []string{"10", "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, called, err := execute(t, tt.args...)

			require.Error(t, err)
			assert.False(t, called, "run must not start on invalid input")
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestEnvironmentDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("COUNTDOWN_FORMAT", "12h")
	t.Setenv("COUNTDOWN_NOTIFY", "false")

	cfg, _, err := execute(t, "10")
	require.NoError(t, err)
	assert.Equal(t, timer.Clock12h, cfg.Format)
	assert.False(t, cfg.Notify)

	cfg, _, err = execute(t, "10", "--format", "24h")
	require.NoError(t, err)
	assert.Equal(t, timer.Clock24h, cfg.Format, "explicit flags win over the environment")
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Standup\nformat: 12h\nnotify: false\n"), 0o644))

	cfg, _, err := execute(t, "15m", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "Standup", cfg.Name)
	assert.Equal(t, timer.Clock12h, cfg.Format)
	assert.False(t, cfg.Notify)

	cfg, _, err = execute(t, "15m", "--config", path, "--name", "Retro")
	require.NoError(t, err)
	assert.Equal(t, "Retro", cfg.Name)
}

func TestMissingExplicitConfigFile(t *testing.T) {
	isolate(t)

	_, called, err := execute(t, "15m", "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.False(t, called)
}

func TestConfigSpec(t *testing.T) {
	cfg := &Config{Duration: time.Minute, Name: "Tea", Notify: true, Format: timer.Clock12h, Debug: true}

	assert.Equal(t, timer.Spec{Duration: time.Minute, Name: "Tea", Notify: true, Format: timer.Clock12h}, cfg.Spec())
}

func TestFormatError(t *testing.T) {
	_, err := util.ParseDuration("banana")
	require.Error(t, err)

	boxed := ansi.Strip(FormatError(err))
	assert.Contains(t, boxed, "Invalid duration format")
	assert.Contains(t, boxed, "Valid formats")
	assert.Contains(t, boxed, "╭")

	plain := ansi.Strip(FormatError(timer.ErrInvalidFormat))
	assert.Contains(t, plain, "invalid clock format")
	assert.NotContains(t, plain, "╭")
}
