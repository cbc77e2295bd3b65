package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/animatedpager/internal/config"
	"github.com/cristianoliveira/animatedpager/internal/journal"
	"github.com/cristianoliveira/animatedpager/internal/trace"
	"github.com/cristianoliveira/animatedpager/internal/version"
)

// sessionStore is the part of the journal the commands use.
type sessionStore interface {
	StartSession(ctx context.Context, info journal.SessionInfo) (*journal.SessionWriter, error)
	ListSessions(ctx context.Context, limit int) ([]journal.Session, error)
	Commands(ctx context.Context, sessionID string) ([]trace.Command, error)
	Close() error
}

type journalOpener func() (sessionStore, error)

// openConfiguredJournal opens the journal at the configured journal_path.
func openConfiguredJournal() (sessionStore, error) {
	path := config.Get("journal_path", "")
	if path == "" {
		return nil, fmt.Errorf("journal: journal_path is not configured")
	}
	j, err := journal.Open(path)
	if err != nil {
		return nil, err
	}
	return j, nil
}

type programRunner func(m tea.Model) error

// runProgram runs m full screen until it quits.
func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type buildVersion struct{}

func (buildVersion) Version() string {
	return version.String()
}
