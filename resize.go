package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/datolytix/oneimage/imageops"
)

var resizeCmd = &cobra.Command{
	Use:   "resize <input> <output>",
	Short: "Resize an image to specified dimensions",
	Long: `Resize an image to specified dimensions.

If only width or height is given, the other dimension is derived from the
aspect ratio. With both given the image is fit within the box, unless
--no-aspect-ratio forces the exact dimensions.`,
	Args: cobra.ExactArgs(2),
	RunE: runResize,
}

func init() {
	resizeCmd.Flags().IntP("width", "w", 0, "target width in pixels")
	resizeCmd.Flags().IntP("height", "H", 0, "target height in pixels")
	resizeCmd.Flags().Bool("no-aspect-ratio", false, "don't maintain aspect ratio")
	resizeCmd.Flags().IntP("quality", "q", 0, "output quality for lossy formats (1-100)")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	noAspect, _ := cmd.Flags().GetBool("no-aspect-ratio")
	quality, _ := cmd.Flags().GetInt("quality")
	input, output := args[0], args[1]

	spinner := console.StartSpinner(fmt.Sprintf("Resizing %s...", filepath.Base(input)))
	timer := console.StartTimer("Resize")

	err := proc.Resize(input, output, imageops.ResizeSpec{
		Width:      width,
		Height:     height,
		KeepAspect: !noAspect,
		Quality:    quality,
	})
	if err != nil {
		spinner.Stop(false, "Resize failed")
		return err
	}

	spinner.Stop(true, fmt.Sprintf("Successfully resized %s to %s",
		filepath.Base(input), filepath.Base(output)))
	timer.End()
	return nil
}
