package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the triage UI
type keyMap struct {
	Keep    key.Binding
	Trash   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Undo    key.Binding
	Summary key.Binding
	Apply   key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Keep: key.NewBinding(
			key.WithKeys("k", "right"),
			key.WithHelp("→/k", "keep"),
		),
		Trash: key.NewBinding(
			key.WithKeys("t", "left"),
			key.WithHelp("←/t", "trash"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "down"),
			key.WithHelp("↓/n", "skip"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "up"),
			key.WithHelp("↑/p", "previous"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Summary: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "summary"),
		),
		Apply: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "apply"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Keep, k.Trash, k.Undo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Keep, k.Trash, k.Undo},
		{k.Next, k.Prev, k.Summary},
		{k.Help, k.Quit},
	}
}
