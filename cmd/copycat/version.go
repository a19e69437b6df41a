package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/copycat-sync/copycat/pkg/copycat"
)

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(command *cobra.Command, arguments []string) {
		fmt.Println(copycat.Version)
	},
}
