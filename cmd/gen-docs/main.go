package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/stigoleg/countdown/internal/config"
)

// This small tool generates shell completions and a man page from the
// countdown command definition.

const appName = "countdown"

func main() {
	cmd := config.NewCommand("", func(*cobra.Command, *config.Config) error { return nil })

	if err := writeCompletions(cmd, filepath.Join("docs", "completions")); err != nil {
		panic(err)
	}
	if err := writeMan(cmd, "man"); err != nil {
		panic(err)
	}
}

func writeCompletions(cmd *cobra.Command, base string) error {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}

	// Bash
	if err := cmd.GenBashCompletionFileV2(filepath.Join(base, appName+".bash"), true); err != nil {
		return err
	}

	// Zsh
	if err := cmd.GenZshCompletionFile(filepath.Join(base, "_"+appName)); err != nil {
		return err
	}

	// Fish
	return cmd.GenFishCompletionFile(filepath.Join(base, appName+".fish"), true)
}

func writeMan(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	header := &doc.GenManHeader{
		Title:   "COUNTDOWN",
		Section: "1",
		Source:  "countdown",
		Manual:  "User Commands",
	}
	cmd.DisableAutoGenTag = true
	return doc.GenManTree(cmd, header, dir)
}
