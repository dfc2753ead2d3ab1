package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Focus
	NextField key.Binding
	PrevField key.Binding

	// Controls
	PrevCategory key.Binding
	NextCategory key.Binding
	Decrease     key.Binding
	Increase     key.Binding
	Toggle       key.Binding

	// Actions
	Reset  key.Binding
	Copy   key.Binding
	Save   key.Binding
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous field"),
		),

		PrevCategory: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next category"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "increase"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),

		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reset"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy css"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save page"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Enter, k.Copy, k.Reset, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Enter},
		{k.NextField, k.PrevField, k.PrevCategory, k.NextCategory, k.Decrease, k.Increase, k.Toggle},
		{k.Reset, k.Copy, k.Save, k.Help, k.Escape, k.Quit},
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
