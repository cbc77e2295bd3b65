/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/animatedpager/cmd"
)

type versionClient interface {
	Version() string
}

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of animatedpager.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "animatedpager version %s\n", client.Version())
			return nil
		},
	}
}

var versionCmd = NewVersionCmd(buildVersion{})

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
