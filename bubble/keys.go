package bubble

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the surface
type KeyMap struct {
	Start      key.Binding
	Cancel     key.Binding
	Background key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " ", "s"),
			key.WithHelp("enter", "start"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "cancel"),
		),
		Background: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "background"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the one-line help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Cancel, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Cancel},
		{k.Background, k.Help, k.Quit},
	}
}

// setRunning enables only the bindings valid for the phase
func (k *KeyMap) setRunning(running bool) {
	k.Start.SetEnabled(!running)
	k.Cancel.SetEnabled(running)
}
