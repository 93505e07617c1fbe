package imageops

import (
	"github.com/datolytix/oneimage/validate"
)

// Convert re-encodes an image into the format implied by outputPath.
// quality applies to lossy outputs; zero means the configured default.
func (p *Processor) Convert(inputPath, outputPath string, quality int) error {
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

	img, format, err := Decode(in)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	p.Console.Debug("decoded %s: format=%s size=%dx%d", in, format, bounds.Dx(), bounds.Dy())

	return Save(img, out, p.encodeOptions(quality))
}
