package imageops

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datolytix/oneimage/config"
	"github.com/datolytix/oneimage/logger"
)

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()

	cfg := &config.Config{
		Quality:          config.DefaultQuality,
		AVIFSpeed:        config.DefaultAVIFSpeed,
		AVIFQualityAlpha: config.DefaultAVIFQualityAlpha,
	}
	console := logger.NewConsole(&logger.Options{
		Level:   slog.LevelError,
		NoColor: true,
	})
	return NewProcessor(cfg, console)
}

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, solidImage(w, h, c)))
	return path
}

func writeJPEG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, jpeg.Encode(f, solidImage(w, h, c), &jpeg.Options{Quality: 90}))
	return path
}

func decodeFile(t *testing.T, path string) (image.Image, string) {
	t.Helper()

	img, format, err := Decode(path)
	require.NoError(t, err)
	return img, format
}
