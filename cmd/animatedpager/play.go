/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/animatedpager/cmd"
	"github.com/cristianoliveira/animatedpager/internal/colors"
	"github.com/cristianoliveira/animatedpager/internal/config"
	"github.com/cristianoliveira/animatedpager/internal/journal"
	"github.com/cristianoliveira/animatedpager/internal/logging"
	"github.com/cristianoliveira/animatedpager/internal/scenario"
)

const playCommandLong = `Replay a scenario file against a simulated pager.

Every step prints the view commands it produced. Steps that declare
"expect" are verified and the command fails on the first difference.

USAGE:
    animatedpager play <scenario.toml> [OPTIONS]

OPTIONS:
    --journal            Store the run in the journal (also journal_enabled=true)
    --quiet-events       Do not print the page and background timeline
    -h, --help           Show this help`

// NewPlayCmd creates the play command with explicit dependencies.
func NewPlayCmd(openJournal journalOpener) *cobra.Command {
	if openJournal == nil {
		panic("NewPlayCmd: openJournal dependency cannot be nil")
	}

	var (
		journalFlag bool
		quietEvents bool
	)
	playCmd := &cobra.Command{
		Use:   "play <scenario.toml>",
		Short: "Replay a scenario and verify its commands",
		Long:  playCommandLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			opts := scenario.RunOptions{Logger: logging.GetGlobal()}
			var sessionID string
			if journalFlag || config.GetBool("journal_enabled", false) {
				store, err := openJournal()
				if err != nil {
					return fmt.Errorf("play: %w", err)
				}
				defer store.Close()

				w, err := store.StartSession(cmd.Context(), journal.SessionInfo{
					Name:       sc.Name,
					Source:     "play",
					PageCount:  sc.Slider.PageCount,
					ImageCount: sc.Slider.ImageCount,
				})
				if err != nil {
					return fmt.Errorf("play: %w", err)
				}
				sessionID = w.ID()
				opts.Sinks = append(opts.Sinks, w)
			}

			res, err := scenario.Run(cmd.Context(), sc, opts)
			if err != nil {
				return fmt.Errorf("play: %w", err)
			}

			out := cmd.OutOrStdout()
			printResult(out, res, !quietEvents)
			if sessionID != "" {
				fmt.Fprintf(out, "journaled as session %s\n", sessionID)
			}
			if err := res.Check(); err != nil {
				return fmt.Errorf("play %s: %w", args[0], err)
			}
			colors.Success(fmt.Sprintf("scenario %q: %d steps, %d commands, final page %d image %d",
				res.Name, len(res.Steps), len(res.Commands), res.Final.Page, res.Final.Image))
			return nil
		},
	}

	playCmd.Flags().BoolVar(&journalFlag, "journal", false, "Store the run in the journal")
	playCmd.Flags().BoolVar(&quietEvents, "quiet-events", false, "Do not print the page and background timeline")
	return playCmd
}

func printResult(w io.Writer, res *scenario.Result, events bool) {
	for _, st := range res.Steps {
		fmt.Fprintf(w, "step %d [%s] %s\n", st.Index, st.At, st.Step)
		for _, c := range st.Commands {
			fmt.Fprintf(w, "    %3d %s\n", c.Seq, c)
		}
	}
	if !events {
		return
	}
	if len(res.Events) > 0 {
		fmt.Fprintln(w, "timeline:")
		for _, e := range res.Events {
			fmt.Fprintf(w, "    %s\n", e)
		}
	}
	if len(res.Notifications) > 0 {
		fmt.Fprintln(w, "notifications:")
		for _, n := range res.Notifications {
			fmt.Fprintf(w, "    %s\n", n)
		}
	}
}

var playCmd = NewPlayCmd(openConfiguredJournal)

func init() {
	cmd.RootCmd.AddCommand(playCmd)
}
