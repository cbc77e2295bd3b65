// Package state provides the BubbleTea model hosting the pager demo.
package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// firstScreenMsg is sent once the program starts so the first page can enter.
type firstScreenMsg struct{}

// timerMsg fires a callback registered through AfterDelay.
type timerMsg struct {
	id int
}

// quitAfterMsg ends the program after the final status was shown.
type quitAfterMsg struct{}

func firstScreen() tea.Msg {
	return firstScreenMsg{}
}

func timerAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	})
}

func quitAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return quitAfterMsg{}
	})
}
