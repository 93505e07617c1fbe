package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <input>...",
	Short: "Show image dimensions, format and file size",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	table := console.NewTable([]string{"File", "Format", "Dimensions", "Size"})

	failed := 0
	for _, path := range args {
		info, err := proc.Info(path)
		if err != nil {
			console.Warn("%s: %v", path, err)
			failed++
			continue
		}
		table.AddRow(
			filepath.Base(info.Path),
			info.Format,
			fmt.Sprintf("%dx%d", info.Width, info.Height),
			formatBytes(info.Bytes),
		)
	}

	if failed < len(args) {
		table.Print()
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(args))
	}
	return nil
}

func formatBytes(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/1024/1024)
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
