package main

import (
	"github.com/spf13/cobra"
)

var rootCommand = &cobra.Command{
	Use:          "copycat",
	Short:        "copycat mirrors a source directory tree onto a target directory tree",
	SilenceUsage: true,
}

func init() {
	rootCommand.AddCommand(syncCommand)
	rootCommand.AddCommand(watchCommand)
	rootCommand.AddCommand(versionCommand)
}
