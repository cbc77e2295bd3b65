package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/animatedpager/internal/tui/state"
)

// startOnly shows the first screen and returns, like a user quitting at once.
func startOnly(got *tea.Model) programRunner {
	return func(m tea.Model) error {
		*got = m
		m.Update(m.Init()())
		return nil
	}
}

func TestNewDemoCmdPanicsWithoutDependencies(t *testing.T) {
	assert.PanicsWithValue(t, "NewDemoCmd: run dependency cannot be nil", func() {
		NewDemoCmd(nil, tempJournal(t))
	})
	assert.PanicsWithValue(t, "NewDemoCmd: openJournal dependency cannot be nil", func() {
		NewDemoCmd(startOnly(new(tea.Model)), nil)
	})
}

func TestDemoRunsModel(t *testing.T) {
	var got tea.Model
	c := NewDemoCmd(startOnly(&got), tempJournal(t))

	_, err := execute(t, c, "--pages", "6", "--images", "2")

	require.NoError(t, err)
	m, ok := got.(*state.Model)
	require.True(t, ok, "expected *state.Model, got %T", got)
	assert.Equal(t, 0, m.Position().Page)
	assert.Contains(t, m.View(), "Page 1/6")
}

func TestDemoWrapsRunnerError(t *testing.T) {
	c := NewDemoCmd(func(tea.Model) error { return errors.New("no tty") }, tempJournal(t))

	_, err := execute(t, c)

	require.Error(t, err)
	assert.Equal(t, "demo: no tty", err.Error())
}

func TestDemoJournalsCommands(t *testing.T) {
	open := tempJournal(t)
	var got tea.Model
	c := NewDemoCmd(startOnly(&got), open)

	_, err := execute(t, c, "--journal")
	require.NoError(t, err)

	sessions := listSessions(t, open)
	require.Len(t, sessions, 1)
	assert.Equal(t, "demo", sessions[0].Source)
	assert.Equal(t, "interactive", sessions[0].Name)
	assert.Equal(t, 4, sessions[0].Commands)
}

func TestDemoJournalOpenFailure(t *testing.T) {
	open := func() (sessionStore, error) { return nil, errors.New("read-only") }
	c := NewDemoCmd(startOnly(new(tea.Model)), open)

	_, err := execute(t, c, "--journal")

	require.Error(t, err)
	assert.Equal(t, "demo: read-only", err.Error())
}
