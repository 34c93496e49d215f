package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/stigoleg/countdown/internal/cleanup"
	"github.com/stigoleg/countdown/internal/config"
	"github.com/stigoleg/countdown/internal/logger"
	"github.com/stigoleg/countdown/internal/notify"
	"github.com/stigoleg/countdown/internal/terminal"
	"github.com/stigoleg/countdown/internal/ui"
)

const appVersion = "1.0.0"

func main() {
	cmd := config.NewCommand(appVersion, runTimer)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, config.FormatError(err))
		os.Exit(1)
	}
}

// runTimer owns the terminal for the run. Every registered release step
// runs before runTimer returns, including when it panics, so errors are
// printed on a restored terminal.
func runTimer(cmd *cobra.Command, cfg *config.Config) error {
	cm := cleanup.NewManager(2 * time.Second)
	return cm.Guard(func() error {
		if err := logger.Init(logger.Config{File: cfg.LogFile, Debug: cfg.Debug}); err != nil {
			return err
		}
		cm.RegisterFunc("logger", logger.Close)

		session, err := terminal.Open(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		cm.RegisterFunc("terminal", session.Close)

		ctx, stop := signal.NotifyContext(cmd.Context(), getSignalsForPlatform()...)
		defer stop()

		outcome, err := ui.Run(ctx, cfg.Spec(),
			ui.WithInput(session.In()),
			ui.WithOutput(session.Out()),
			ui.WithNotifier(notify.NewDesktop("countdown")),
		)
		log := logger.Component("main")
		log.Debug().Stringer("outcome", outcome).Err(err).Msg("run returned")
		return err
	})
}
