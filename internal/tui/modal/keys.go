package modal

import "charm.land/bubbles/v2/key"

// KeyMap holds the modal's key bindings.
type KeyMap struct {
	Close    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns Escape to close, Tab/Shift+Tab to move focus and
// Enter/Space to activate the focused control.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("enter", "select"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Next, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate, k.Next, k.Prev},
		{k.Close},
	}
}
