// Package logger owns the process-wide zerolog logger. The countdown draws
// on the terminal, so logs only ever go to a rotated file and are disabled
// unless a log file or debug mode is requested.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance
	Log = zerolog.Nop()

	fileWriter *lumberjack.Logger
	mu         sync.Mutex
)

// Config holds configuration for file-based logging.
type Config struct {
	File       string
	Debug      bool
	MaxSizeMB  int
	MaxBackups int
}

func (c Config) maxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 5
	}
	return c.MaxSizeMB
}

func (c Config) maxBackups() int {
	if c.MaxBackups <= 0 {
		return 2
	}
	return c.MaxBackups
}

// DefaultFile is where debug logs go when no file is given.
func DefaultFile() string {
	return filepath.Join(os.TempDir(), "countdown", "debug.log")
}

// Init configures Log. With neither a file nor debug mode the logger stays
// disabled. The standard library logger is redirected as well so that
// nothing writes to the terminal while the countdown is drawn.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if cfg.File == "" && !cfg.Debug {
		Log = zerolog.Nop()
		return nil
	}

	path := cfg.File
	if path == "" {
		path = DefaultFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.maxSizeMB(),
		MaxBackups: cfg.maxBackups(),
		LocalTime:  true,
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	Log = zerolog.New(fileWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	log.SetFlags(0)
	log.SetOutput(Log)
	return nil
}

// Close flushes the log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Log = zerolog.Nop()
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags)
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// Component returns Log tagged with a component name.
func Component(name string) zerolog.Logger {
	return Log.With().Str("component", name).Logger()
}
