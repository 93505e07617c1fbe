package imageops

import (
	"github.com/disintegration/imaging"

	"github.com/datolytix/oneimage/validate"
)

// ResizeSpec describes a resize target. Zero Width or Height means "derive
// from the other dimension".
type ResizeSpec struct {
	Width      int
	Height     int
	KeepAspect bool
	Quality    int
}

// Resize scales an image to spec using Lanczos resampling.
func (p *Processor) Resize(inputPath, outputPath string, spec ResizeSpec) error {
	if err := validate.Dimensions(spec.Width, spec.Height); err != nil {
		return err
	}
	if err := validate.Quality(spec.Quality); err != nil {
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

	bounds := img.Bounds()
	width, height := fitDimensions(bounds.Dx(), bounds.Dy(), spec.Width, spec.Height, spec.KeepAspect)
	p.Console.Debug("resizing %dx%d -> %dx%d (keep aspect: %v)",
		bounds.Dx(), bounds.Dy(), width, height, spec.KeepAspect)

	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	return Save(resized, out, p.encodeOptions(spec.Quality))
}

// fitDimensions resolves the target size. With keepAspect, a single given
// dimension derives the other from the source ratio, and two given
// dimensions bound a fit-within box. Without it, missing dimensions fall
// back to the source value.
func fitDimensions(origW, origH, width, height int, keepAspect bool) (int, int) {
	if !keepAspect {
		if width == 0 {
			width = origW
		}
		if height == 0 {
			height = origH
		}
		return width, height
	}

	switch {
	case width == 0:
		width = height * origW / origH
	case height == 0:
		height = width * origH / origW
	default:
		widthRatio := float64(width) / float64(origW)
		heightRatio := float64(height) / float64(origH)
		if widthRatio < heightRatio {
			height = int(float64(origH) * widthRatio)
		} else {
			width = int(float64(origW) * heightRatio)
		}
	}

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
