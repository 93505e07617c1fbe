package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := fmt.Sprintf(
			"Version: %s\nBuild date: %s\nGit commit: %s",
			Version, BuildDate, GitCommit,
		)
		console.Box("oneimage version information", info)
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.AddCommand(versionCmd)
}
