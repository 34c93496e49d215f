// Package notify sends best-effort desktop notifications. Delivery failures
// are logged and dropped; callers never see them.
package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/stigoleg/countdown/internal/logger"
	"github.com/stigoleg/countdown/internal/util"
)

// commandTimeout bounds how long a notification helper may run.
const commandTimeout = 3 * time.Second

// Notifier is a fire-and-forget notification sender.
type Notifier interface {
	Notify(title, body string)
}

// Func adapts a function to a Notifier.
type Func func(title, body string)

// Notify calls f.
func (f Func) Notify(title, body string) { f(title, body) }

// Nop drops every notification.
var Nop Notifier = Func(func(string, string) {})

// Desktop shows notifications through the platform's notification helper:
// notify-send on Linux and the BSDs, osascript on macOS and a PowerShell
// toast on Windows.
type Desktop struct {
	appName    string
	goos       string
	hasCommand func(string) bool
	start      func(name string, args ...string) error
}

// NewDesktop returns a Desktop notifier for the running platform.
func NewDesktop(appName string) *Desktop {
	return &Desktop{
		appName:    appName,
		goos:       runtime.GOOS,
		hasCommand: util.HasCommand,
		start:      startBestEffort,
	}
}

// Notify implements Notifier. It returns once the helper has been started.
func (d *Desktop) Notify(title, body string) {
	log := logger.Component("notify")

	name, args := d.command(title, body)
	if !d.hasCommand(name) {
		log.Debug().Str("helper", name).Msg("notification helper not available")
		return
	}
	if err := d.start(name, args...); err != nil {
		log.Debug().Err(err).Str("helper", name).Msg("notification failed")
		return
	}
	log.Debug().Str("helper", name).Str("body", body).Msg("notification sent")
}

// command returns the helper invocation for the platform.
func (d *Desktop) command(title, body string) (string, []string) {
	switch d.goos {
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s sound name %s",
			appleScriptQuote(body), appleScriptQuote(title), appleScriptQuote("Boop"))
		return "osascript", []string{"-e", script}
	case "windows":
		return "powershell", []string{"-NoProfile", "-NonInteractive", "-Command", toastScript(d.appName, title, body)}
	default:
		// assume an XDG-compliant desktop
		return "notify-send", []string{
			"--app-name=" + d.appName,
			"--icon=terminal",
			"--hint=string:sound-name:message-new-email",
			title,
			body,
		}
	}
}

func appleScriptQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func powerShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func toastScript(appName, title, body string) string {
	var b strings.Builder
	b.WriteString("[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] > $null;")
	b.WriteString("$t = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02);")
	b.WriteString("$x = $t.GetElementsByTagName('text');")
	b.WriteString("$x.Item(0).AppendChild($t.CreateTextNode(" + powerShellQuote(title) + ")) > $null;")
	b.WriteString("$x.Item(1).AppendChild($t.CreateTextNode(" + powerShellQuote(body) + ")) > $null;")
	b.WriteString("[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(" + powerShellQuote(appName) + ")")
	b.WriteString(".Show([Windows.UI.Notifications.ToastNotification]::new($t))")
	return b.String()
}

// startBestEffort starts the helper and reaps it in the background.
func startBestEffort(name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		cancel()
		return err
	}
	go func() {
		defer cancel()
		if err := cmd.Wait(); err != nil {
			log := logger.Component("notify")
			log.Debug().Err(err).Str("helper", name).Msg("notification helper exited")
		}
	}()
	return nil
}
