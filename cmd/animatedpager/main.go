package main

import (
	"os"

	"github.com/cristianoliveira/animatedpager/cmd"
	"github.com/cristianoliveira/animatedpager/internal/colors"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

func run(args []string, execute func() error) int {
	cmd.RootCmd.SetArgs(args)
	colors.Debug("starting animatedpager")
	if err := execute(); err != nil {
		colors.Error(err.Error())
		return 1
	}
	colors.Debug("animatedpager finished")
	return 0
}
