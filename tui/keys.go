package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Enter   key.Binding
	Copy    key.Binding
	Save    key.Binding
	SaveAll key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "view operation"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	SaveAll: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "save all"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("q", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
