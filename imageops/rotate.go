package imageops

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/datolytix/oneimage/validate"
)

// Rotate turns an image by angle degrees counter-clockwise. With expand the
// canvas grows to hold the whole rotated image; without it the original
// canvas size is kept and the rotated image is centered on it.
func (p *Processor) Rotate(inputPath, outputPath string, angle float64, expand bool, quality int) error {
	if err := validate.Quality(quality); err != nil {
		return err
	}
	in, err := validate.InputPath(inputPath)
	if err != nil {
		return err
	}
	out, err := validate.OutputPath(outputPath)
	if err != nil {
		return err
	}

	img, _, err := Decode(in)
	if err != nil {
		return err
	}

	outFormat, err := FormatFromPath(out)
	if err != nil {
		return err
	}
	bg := color.Color(color.NRGBA{})
	if outFormat == JPEG {
		bg = color.White
	}

	rotated := rotate(img, angle, bg)

	if !expand {
		bounds := img.Bounds()
		canvas := imaging.New(bounds.Dx(), bounds.Dy(), bg)
		rotated = imaging.PasteCenter(canvas, rotated)
	}

	p.Console.Debug("rotated by %.1f° (expand: %v), output %dx%d",
		angle, expand, rotated.Bounds().Dx(), rotated.Bounds().Dy())

	return Save(rotated, out, p.encodeOptions(quality))
}

// rotate normalizes the angle and takes the exact quarter-turn paths when
// possible; those avoid the resampling pass entirely.
func rotate(img image.Image, angle float64, bg color.Color) *image.NRGBA {
	normalized := math.Mod(angle, 360)
	if normalized < 0 {
		normalized += 360
	}

	switch normalized {
	case 0:
		return imaging.Clone(img)
	case 90:
		return imaging.Rotate90(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate270(img)
	}
	return imaging.Rotate(img, normalized, bg)
}
