package state

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next         key.Binding
	Prev         key.Binding
	ForwardExit  key.Binding
	BackwardExit key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Prev:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous page")),
		ForwardExit:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "exit forwards")),
		BackwardExit: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "exit backwards")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.ForwardExit, k.BackwardExit},
		{k.Help, k.Quit},
	}
}
