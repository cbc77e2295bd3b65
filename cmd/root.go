/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/animatedpager/internal/colors"
	"github.com/cristianoliveira/animatedpager/internal/config"
	"github.com/cristianoliveira/animatedpager/internal/logging"
	"github.com/cristianoliveira/animatedpager/internal/slider"
	"github.com/cristianoliveira/animatedpager/internal/version"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "animatedpager",
	Short:         "Drive a paged view and its background through their transitions.",
	Long:          `Drive a paged view and its background through their transitions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.ShutdownGlobal()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	// Set version for use in help output
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd)
	})

	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug output and debug level logs")
	RootCmd.PersistentFlags().Bool("quiet", false, "Only log errors")
	RootCmd.PersistentFlags().Bool("no-color", false, "Print messages without ANSI colors")
}

// setup loads the configuration, applies the global flags and starts logging.
func setup(cmd *cobra.Command) error {
	config.Load()
	for _, name := range []string{"debug", "quiet"} {
		flag := cmd.Flags().Lookup(name)
		if flag != nil && flag.Changed {
			config.Set(name, flag.Value.String())
		}
	}
	colors.SetDebug(config.GetBool("debug", false))
	if noColor, err := cmd.Flags().GetBool("no-color"); err == nil && noColor {
		colors.SetPlain(true)
	}

	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
	logging.Debug("command started", "command", cmd.Name())
	return nil
}

// SliderConfig builds the slider configuration from the loaded settings.
func SliderConfig() slider.Config {
	return slider.Config{
		PageCount:  config.GetInt("page_count", 4),
		ImageCount: config.GetInt("image_count", 3),
		FirstPage:  config.GetInt("first_page", 0),
		FirstImage: config.GetInt("first_image", 0),
		EnterDelay: config.GetDuration("enter_delay_ms", slider.DefaultEnterDelay),
	}
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"play",
		"demo",
		"history",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-24s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`animatedpager v%s

Drive a paged view and its background through their transitions.

USAGE:
    animatedpager [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --debug         Enable debug output
    --quiet         Only log errors
    --no-color      Print messages without ANSI colors
    -h, --help      Show help message

ENVIRONMENT:
    ANIMATEDPAGER_CONFIG_PATH   Configuration file (default %s)
    ANIMATEDPAGER_<KEY>         Override any configuration key, e.g. ANIMATEDPAGER_PAGE_COUNT=6
`, version.String(), strings.Join(cmdLines, "\n"), "$XDG_CONFIG_HOME/animatedpager/config.toml")
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
