// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the palette.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevProp key.Binding
	NextProp key.Binding

	// Actions
	Place     key.Binding
	Clone     key.Binding
	Rotate    key.Binding
	Increment key.Binding
	Decrement key.Binding
	Toggle    key.Binding

	// UI options (persisted)
	TogglePins     key.Binding
	ToggleGrouping key.Binding

	// General
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		PrevProp: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous property"),
		),
		NextProp: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next property"),
		),

		Place: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "place component"),
		),
		Clone: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clone placement"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "increase value"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "decrease value"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "tab"),
			key.WithHelp("space", "cycle option"),
		),

		TogglePins: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle pin names"),
		),
		ToggleGrouping: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle category grouping"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
