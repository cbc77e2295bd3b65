/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/animatedpager/cmd"
	"github.com/cristianoliveira/animatedpager/internal/journal"
)

const historyCommandLong = `List journaled sessions, or print the commands of one session.

USAGE:
    animatedpager history [session-id] [OPTIONS]

OPTIONS:
    --limit <n>          Maximum number of sessions to list (default 20, 0 for all)
    -h, --help           Show this help`

// NewHistoryCmd creates the history command with explicit dependencies.
func NewHistoryCmd(openJournal journalOpener) *cobra.Command {
	if openJournal == nil {
		panic("NewHistoryCmd: openJournal dependency cannot be nil")
	}

	var limit int
	historyCmd := &cobra.Command{
		Use:   "history [session-id]",
		Short: "Show journaled sessions",
		Long:  historyCommandLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal()
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				cmds, err := store.Commands(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("history: %w", err)
				}
				for _, c := range cmds {
					fmt.Fprintf(out, "%4d %s\n", c.Seq, c)
				}
				return nil
			}

			sessions, err := store.ListSessions(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions journaled")
				return nil
			}
			return printSessions(out, sessions)
		},
	}

	historyCmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to list")
	return historyCmd
}

func printSessions(w io.Writer, sessions []journal.Session) error {
	for _, s := range sessions {
		_, err := fmt.Fprintf(w, "%-36s  %-19s  %-5s  %dx%d  %4d  %s\n",
			s.ID, s.StartedAt.Local().Format("2006-01-02 15:04:05"), s.Source,
			s.PageCount, s.ImageCount, s.Commands, s.Name)
		if err != nil {
			return err
		}
	}
	return nil
}

var historyCmd = NewHistoryCmd(openConfiguredJournal)

func init() {
	cmd.RootCmd.AddCommand(historyCmd)
}
