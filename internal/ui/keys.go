package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of a running countdown.
type KeyMap struct {
	Cancel key.Binding
}

// DefaultKeys returns the default key bindings for the application.
// ctrl+c is included because raw mode delivers it as a key press instead
// of SIGINT.
func DefaultKeys() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "cancel"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Current.Help.Bold(true)
	h.Styles.ShortDesc = Current.Help
	return h
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Cancel}}
}
