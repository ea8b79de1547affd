package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Focus    key.Binding
	Map      key.Binding
	Mobility key.Binding
	Swap     key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab", "shift+tab", "left", "right"),
		key.WithHelp("tab", "switch list"),
	),
	Map: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle Map"),
	),
	Mobility: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "toggle Mobility"),
	),
	Swap: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "swap"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy route"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Map, k.Mobility, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.Map, k.Mobility},
		{k.Swap, k.Copy},
		{k.Help, k.Quit},
	}
}
