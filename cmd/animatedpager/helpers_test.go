package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/animatedpager/internal/journal"
)

// tempJournal returns an opener for a journal living in the test's temp dir.
func tempJournal(t *testing.T) journalOpener {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	return func() (sessionStore, error) {
		j, err := journal.Open(path)
		if err != nil {
			return nil, err
		}
		return j, nil
	}
}

// execute runs c with args and returns what it printed.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func listSessions(t *testing.T, open journalOpener) []journal.Session {
	t.Helper()
	store, err := open()
	require.NoError(t, err)
	defer store.Close()
	sessions, err := store.ListSessions(t.Context(), 0)
	require.NoError(t, err)
	return sessions
}
