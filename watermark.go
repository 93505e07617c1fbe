package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/datolytix/oneimage/config"
	"github.com/datolytix/oneimage/imageops"
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark <input> <output>",
	Short: "Add a text watermark to an image",
	Args:  cobra.ExactArgs(2),
	RunE:  runWatermark,
}

func init() {
	watermarkCmd.Flags().StringP("text", "t", "", "text to use as watermark (required)")
	watermarkCmd.Flags().String("position", string(imageops.BottomRight),
		"watermark position (top-left, top-right, bottom-left, bottom-right, center)")
	watermarkCmd.Flags().Int("opacity", config.DefaultOpacity, "watermark opacity (0-100)")
	watermarkCmd.Flags().Int("font-size", config.DefaultFontSize, "font size for watermark text")
	watermarkCmd.Flags().String("font-color", "white", "color of watermark text (name or #hex)")
	watermarkCmd.Flags().String("font", "", "path to a TTF/OTF font file")
	watermarkCmd.Flags().IntP("quality", "q", 0, "output quality for lossy formats (1-100)")
	watermarkCmd.MarkFlagRequired("text")
	rootCmd.AddCommand(watermarkCmd)
}

func runWatermark(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	position, _ := cmd.Flags().GetString("position")
	opacity, _ := cmd.Flags().GetInt("opacity")
	fontSize, _ := cmd.Flags().GetInt("font-size")
	fontColor, _ := cmd.Flags().GetString("font-color")
	fontPath, _ := cmd.Flags().GetString("font")
	quality, _ := cmd.Flags().GetInt("quality")
	input, output := args[0], args[1]

	spinner := console.StartSpinner(fmt.Sprintf("Adding watermark to %s...",
		filepath.Base(input)))
	timer := console.StartTimer("Watermark")

	err := proc.Watermark(input, output, imageops.WatermarkSpec{
		Text:      text,
		Position:  position,
		Opacity:   opacity,
		FontSize:  fontSize,
		FontColor: fontColor,
		FontPath:  fontPath,
		Quality:   quality,
	})
	if err != nil {
		spinner.Stop(false, "Watermarking failed")
		return err
	}

	spinner.Stop(true, fmt.Sprintf("Successfully added watermark: %s -> %s",
		filepath.Base(input), filepath.Base(output)))
	timer.End()
	return nil
}
