/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/animatedpager/cmd"
	"github.com/cristianoliveira/animatedpager/internal/colors"
	"github.com/cristianoliveira/animatedpager/internal/config"
	"github.com/cristianoliveira/animatedpager/internal/journal"
	"github.com/cristianoliveira/animatedpager/internal/logging"
	"github.com/cristianoliveira/animatedpager/internal/slider"
	"github.com/cristianoliveira/animatedpager/internal/trace"
	"github.com/cristianoliveira/animatedpager/internal/tui/state"
)

const demoCommandLong = `Open an interactive pager whose pages and background animate in the terminal.

KEYS:
    →/l      next page
    ←/h      previous page
    n        leave the flow forwards
    p        leave the flow backwards
    ?        toggle help
    q        quit

OPTIONS:
    --pages <n>          Number of pages (default page_count)
    --images <n>         Number of background images (default image_count)
    --journal            Store the session in the journal
    -h, --help           Show this help`

// NewDemoCmd creates the demo command with explicit dependencies.
func NewDemoCmd(run programRunner, openJournal journalOpener) *cobra.Command {
	if run == nil {
		panic("NewDemoCmd: run dependency cannot be nil")
	}
	if openJournal == nil {
		panic("NewDemoCmd: openJournal dependency cannot be nil")
	}

	var (
		pages       int
		images      int
		journalFlag bool
	)
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive terminal demo",
		Long:  demoCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg := demoConfig()
			if pages > 0 {
				cfg.Slider.PageCount = pages
			}
			if images > 0 {
				cfg.Slider.ImageCount = images
			}

			if journalFlag || config.GetBool("journal_enabled", false) {
				store, err := openJournal()
				if err != nil {
					return fmt.Errorf("demo: %w", err)
				}
				defer store.Close()

				w, err := store.StartSession(c.Context(), journal.SessionInfo{
					Name:       "interactive",
					Source:     "demo",
					PageCount:  cfg.Slider.PageCount,
					ImageCount: cfg.Slider.ImageCount,
				})
				if err != nil {
					return fmt.Errorf("demo: %w", err)
				}
				cfg.ViewWrapper = func(v slider.View) slider.View {
					return trace.NewRecorder(v, trace.WithSink(w))
				}
				defer colors.Info(fmt.Sprintf("journaled as session %s", w.ID()))
			}

			m, err := state.NewModel(cfg)
			if err != nil {
				return err
			}
			if err := run(m); err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			return nil
		},
	}

	demoCmd.Flags().IntVar(&pages, "pages", 0, "Number of pages")
	demoCmd.Flags().IntVar(&images, "images", 0, "Number of background images")
	demoCmd.Flags().BoolVar(&journalFlag, "journal", false, "Store the session in the journal")
	return demoCmd
}

// demoConfig builds the demo settings from the loaded configuration.
func demoConfig() state.Config {
	return state.Config{
		Slider:             cmd.SliderConfig(),
		ExitDuration:       config.GetDuration("exit_duration_ms", 300*time.Millisecond),
		EnterDuration:      config.GetDuration("enter_duration_ms", 300*time.Millisecond),
		BackgroundDuration: config.GetDuration("background_duration_ms", 450*time.Millisecond),
		Logger:             logging.GetGlobal(),
	}
}

var demoCmd = NewDemoCmd(runProgram, openConfiguredJournal)

func init() {
	cmd.RootCmd.AddCommand(demoCmd)
}
