package imageops

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/datolytix/oneimage/validate"
)

// Position anchors the watermark text on the image.
type Position string

const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
	Center      Position = "center"
)

// distance between the text box and the image edge, in pixels
const watermarkPadding = 20

// ParsePosition maps a position name to its Position. ok is false for
// unknown names.
func ParsePosition(s string) (Position, bool) {
	switch Position(s) {
	case TopLeft, TopRight, BottomLeft, BottomRight, Center:
		return Position(s), true
	}
	return BottomRight, false
}

// WatermarkSpec describes a text watermark.
type WatermarkSpec struct {
	Text      string
	Position  string
	Opacity   int
	FontSize  int
	FontColor string
	FontPath  string
	Quality   int
}

// Watermark draws spec.Text over the image at the anchored position.
// Unknown positions and colors fall back (bottom-right, white) with a
// warning rather than failing the run.
func (p *Processor) Watermark(inputPath, outputPath string, spec WatermarkSpec) error {
	if spec.Text == "" {
		return validate.Errorf("watermark text must not be empty")
	}
	if err := validate.Opacity(spec.Opacity); err != nil {
		return err
	}
	if err := validate.FontSize(spec.FontSize); err != nil {
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

	face, err := loadFace(spec.FontPath, float64(spec.FontSize))
	if err != nil {
		return err
	}
	defer face.Close()

	col, err := ParseColor(spec.FontColor)
	if err != nil {
		p.Console.Warn("invalid color %q, using white", spec.FontColor)
		col, _ = ParseColor("white")
	}
	col.A = uint8(255 * spec.Opacity / 100)

	pos, ok := ParsePosition(spec.Position)
	if !ok {
		p.Console.Warn("invalid position %q, using %s", spec.Position, BottomRight)
	}

	base := imaging.Clone(img)
	drawer := &font.Drawer{
		Dst:  base,
		Src:  image.NewUniform(col),
		Face: face,
	}

	metrics := face.Metrics()
	textWidth := drawer.MeasureString(spec.Text).Ceil()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	bounds := base.Bounds()
	x, y := anchor(pos, bounds.Dx(), bounds.Dy(), textWidth, textHeight)
	drawer.Dot = fixed.P(x, y+metrics.Ascent.Ceil())

	p.Console.Debug("watermark %q at %s (%d,%d), text box %dx%d",
		spec.Text, pos, x, y, textWidth, textHeight)

	drawer.DrawString(spec.Text)

	return Save(base, out, p.encodeOptions(spec.Quality))
}

// anchor returns the top-left corner of the text box.
func anchor(pos Position, imgW, imgH, textW, textH int) (int, int) {
	switch pos {
	case TopLeft:
		return watermarkPadding, watermarkPadding
	case TopRight:
		return imgW - textW - watermarkPadding, watermarkPadding
	case BottomLeft:
		return watermarkPadding, imgH - textH - watermarkPadding
	case Center:
		return (imgW - textW) / 2, (imgH - textH) / 2
	default:
		return imgW - textW - watermarkPadding, imgH - textH - watermarkPadding
	}
}

// loadFace builds a font.Face from a user-supplied TTF/OTF file, or from
// the embedded Go Bold font when no path is given.
func loadFace(path string, size float64) (font.Face, error) {
	data := gobold.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, validate.Errorf("cannot read font file: %v", err)
		}
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building font face: %w", err)
	}
	return face, nil
}
