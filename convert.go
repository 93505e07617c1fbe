package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert an image from one format to another",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().IntP("quality", "q", 0, "output quality for lossy formats (1-100)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	quality, _ := cmd.Flags().GetInt("quality")
	input, output := args[0], args[1]

	spinner := console.StartSpinner(fmt.Sprintf("Converting %s to %s...",
		filepath.Base(input), filepath.Base(output)))
	timer := console.StartTimer("Conversion")

	if err := proc.Convert(input, output, quality); err != nil {
		spinner.Stop(false, "Conversion failed")
		return err
	}

	spinner.Stop(true, fmt.Sprintf("Successfully converted %s to %s",
		filepath.Base(input), filepath.Base(output)))
	timer.End()
	return nil
}
