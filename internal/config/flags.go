package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stigoleg/countdown/internal/timer"
	"github.com/stigoleg/countdown/internal/ui"
	"github.com/stigoleg/countdown/internal/util"
)

// EnvPrefix prefixes environment variables that override defaults, e.g.
// COUNTDOWN_FORMAT=12h.
const EnvPrefix = "COUNTDOWN"

// Config is the resolved command line of one run.
type Config struct {
	Duration time.Duration
	Name     string
	Notify   bool
	Format   timer.ClockFormat
	LogFile  string
	Debug    bool
}

// Spec returns the timer configuration.
func (c *Config) Spec() timer.Spec {
	return timer.Spec{
		Duration: c.Duration,
		Name:     c.Name,
		Notify:   c.Notify,
		Format:   c.Format,
	}
}

// RunFunc receives the parsed configuration.
type RunFunc func(cmd *cobra.Command, cfg *Config) error

const durationHelp = `The duration of the timer:
  h (hours), m (minutes), s (seconds), ms (milliseconds).
  A bare number is a number of seconds.`

// NewCommand builds the countdown command. Parsing the duration and the
// options happens before run is called, so a bad argument never touches the
// terminal.
func NewCommand(version string, run RunFunc) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "countdown <duration>",
		Short: "A terminal countdown timer with a gradient progress bar",
		Long: "countdown runs a timer in the terminal and shows the time left and a progress bar.\n\n" +
			durationHelp + "\n\n" +
			"Press q or Esc to cancel.",
		Example: `  countdown 50        # 50 seconds
  countdown 45m       # 45 minutes
  countdown 1h30m -n "Deep work" --format 12h
  countdown 25m --notify=false`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Load(v, cmd.Flags(), args[0])
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	cmd.SetVersionTemplate("countdown version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringP("name", "n", "", "A name for the timer")
	flags.Bool("notify", true, "Send a notification when the timer begins and ends (use --notify=false to disable)")
	flags.StringP("format", "f", "24h", "Clock format of the start time: 24h (23:59:59) or 12h (11:59:59 PM)")
	flags.String("log-file", "", "Write logs to this file")
	flags.Bool("debug", false, "Enable debug logging (to --log-file or a temporary debug.log)")
	flags.String("config", "", "YAML file with defaults (default <user config dir>/countdown/config.yaml)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"24h", "12h"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// DefaultConfigFile returns the per-user config file location, or "" when
// the platform has no config directory.
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "countdown", "config.yaml")
}

// Load resolves the configuration. Explicit flags win over environment
// variables, which win over the config file, which wins over flag defaults.
func Load(v *viper.Viper, flags *pflag.FlagSet, duration string) (*Config, error) {
	d, err := util.ParseDuration(duration)
	if err != nil {
		return nil, err
	}

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	format, err := timer.ParseClockFormat(v.GetString("format"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Duration: d,
		Name:     v.GetString("name"),
		Notify:   v.GetBool("notify"),
		Format:   format,
		LogFile:  v.GetString("log-file"),
		Debug:    v.GetBool("debug"),
	}, nil
}

func readConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile()
		if path == "" {
			return nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// FormatError renders err for the terminal. Multi-part messages, such as an
// invalid duration with its list of valid formats, get a bordered box.
func FormatError(err error) string {
	msg := err.Error()
	parts := strings.SplitN(msg, "\n\n", 2)
	if len(parts) == 2 {
		errorBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4040")).
			Padding(0, 1)

		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4040")).
			Render(parts[0])

		details := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Render(parts[1])

		return errorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
	}
	return ui.Current.Error.Render(msg)
}
