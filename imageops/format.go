// Package imageops wraps the imaging libraries behind one operation per
// subcommand: convert, resize, rotate, watermark, info, and batch. Each
// operation validates its inputs, decodes through the registered codecs,
// calls a single library primitive, and encodes with format-specific
// options.
package imageops

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/gen2brain/avif"

	_ "golang.org/x/image/webp"

	"github.com/datolytix/oneimage/config"
	"github.com/datolytix/oneimage/validate"
)

// Format is a canonical output format name.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	WebP Format = "webp"
	AVIF Format = "avif"
)

// FormatFromPath maps a file extension to its Format.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name, ok := config.SupportedFormats[ext]
	if !ok {
		return "", validate.Errorf("unsupported format %q, supported formats: %s",
			ext, config.FormatList())
	}
	return Format(name), nil
}

// Lossy reports whether the format takes a quality parameter.
func (f Format) Lossy() bool {
	return f == JPEG || f == WebP || f == AVIF
}

// EncodeOptions carries the per-format encoder knobs.
type EncodeOptions struct {
	// Quality applies to JPEG, WebP and AVIF output (1-100).
	Quality int

	// AVIF-only knobs, surfaced from config.
	AVIFSpeed        int
	AVIFQualityAlpha int
}

// Decode opens and decodes an image file, returning the decoded image and
// the codec name reported by the registered decoder.
func Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image %s: %w", filepath.Base(path), err)
	}
	return img, format, nil
}

// DecodeConfig reads just the image header: dimensions and codec name.
func DecodeConfig(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, "", fmt.Errorf("reading image header %s: %w", filepath.Base(path), err)
	}
	return cfg, format, nil
}

// Save encodes img to path with the encoder matching the path's extension.
// The file is written to a temp file in the destination directory and
// renamed into place so a failed encode never leaves a truncated output.
func Save(img image.Image, path string, opts EncodeOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if format == JPEG {
		img = flattenOnWhite(img)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".oneimage-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := encode(tmp, img, format, opts); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing output file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

func encode(f *os.File, img image.Image, format Format, opts EncodeOptions) error {
	quality := opts.Quality
	if quality == 0 {
		quality = config.DefaultQuality
	}

	switch format {
	case PNG:
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	case JPEG:
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding JPEG: %w", err)
		}
	case WebP:
		if err := webp.Encode(f, img, &webp.Options{Quality: float32(quality)}); err != nil {
			return fmt.Errorf("encoding WebP: %w", err)
		}
	case AVIF:
		avifOpts := avif.Options{
			Quality:           quality,
			QualityAlpha:      opts.AVIFQualityAlpha,
			Speed:             opts.AVIFSpeed,
			ChromaSubsampling: image.YCbCrSubsampleRatio420,
		}
		if err := avif.Encode(f, img, avifOpts); err != nil {
			return fmt.Errorf("encoding AVIF: %w", err)
		}
	default:
		return validate.Errorf("unsupported format %q", format)
	}
	return nil
}

// flattenOnWhite composites img over a white background. JPEG has no alpha
// channel.
func flattenOnWhite(img image.Image) image.Image {
	if opaque(img) {
		return img
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

func opaque(img image.Image) bool {
	type opaquer interface{ Opaque() bool }
	if o, ok := img.(opaquer); ok {
		return o.Opaque()
	}
	return false
}
