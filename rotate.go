package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <input> <output>",
	Short: "Rotate an image by a specified angle",
	Long: `Rotate an image by a specified angle in degrees, counter-clockwise.

By default the canvas expands to fit the rotated image; --no-expand keeps
the original canvas size and centers the rotated image on it.`,
	Args: cobra.ExactArgs(2),
	RunE: runRotate,
}

func init() {
	rotateCmd.Flags().Float64("angle", 90, "rotation angle in degrees (counter-clockwise)")
	rotateCmd.Flags().Bool("no-expand", false, "keep the original canvas size")
	rotateCmd.Flags().IntP("quality", "q", 0, "output quality for lossy formats (1-100)")
	rootCmd.AddCommand(rotateCmd)
}

func runRotate(cmd *cobra.Command, args []string) error {
	angle, _ := cmd.Flags().GetFloat64("angle")
	noExpand, _ := cmd.Flags().GetBool("no-expand")
	quality, _ := cmd.Flags().GetInt("quality")
	input, output := args[0], args[1]

	spinner := console.StartSpinner(fmt.Sprintf("Rotating %s by %.1f°...",
		filepath.Base(input), angle))
	timer := console.StartTimer("Rotation")

	if err := proc.Rotate(input, output, angle, !noExpand, quality); err != nil {
		spinner.Stop(false, "Rotation failed")
		return err
	}

	spinner.Stop(true, fmt.Sprintf("Successfully rotated %s -> %s",
		filepath.Base(input), filepath.Base(output)))
	timer.End()
	return nil
}
