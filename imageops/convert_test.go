package imageops

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datolytix/oneimage/validate"
)

func TestConvertPNGToJPEG(t *testing.T) {
	p := newTestProcessor(t)
	dir := t.TempDir()
	input := writePNG(t, dir, "in.png", 60, 40, color.NRGBA{255, 0, 0, 255})
	output := filepath.Join(dir, "out.jpg")

	require.NoError(t, p.Convert(input, output, 0))

	img, format := decodeFile(t, output)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}

func TestConvertJPEGToWebP(t *testing.T) {
	p := newTestProcessor(t)
	dir := t.TempDir()
	input := writeJPEG(t, dir, "in.jpg", 32, 32, color.NRGBA{0, 0, 255, 255})
	output := filepath.Join(dir, "out.webp")

	require.NoError(t, p.Convert(input, output, 70))

	_, format := decodeFile(t, output)
	assert.Equal(t, "webp", format)
}

func TestConvertTransparentPNGToJPEG(t *testing.T) {
	p := newTestProcessor(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "in.png")
	f, err := os.Create(input)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solidImage(20, 20, color.NRGBA{0, 255, 0, 0})))
	require.NoError(t, f.Close())

	output := filepath.Join(dir, "out.jpg")
	require.NoError(t, p.Convert(input, output, 0))

	// Fully transparent pixels flatten onto white.
	img, _ := decodeFile(t, output)
	r, g, b, _ := img.At(10, 10).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Greater(t, g, uint32(0xf000))
	assert.Greater(t, b, uint32(0xf000))
}

func TestConvertErrors(t *testing.T) {
	p := newTestProcessor(t)
	dir := t.TempDir()
	input := writePNG(t, dir, "in.png", 10, 10, color.White)

	t.Run("nonexistent input", func(t *testing.T) {
		err := p.Convert(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.jpg"), 0)
		assert.True(t, validate.IsValidation(err))
	})

	t.Run("unsupported output format", func(t *testing.T) {
		err := p.Convert(input, filepath.Join(dir, "out.gif"), 0)
		assert.True(t, validate.IsValidation(err))
	})

	t.Run("quality out of range", func(t *testing.T) {
		for _, q := range []int{-5, 101} {
			err := p.Convert(input, filepath.Join(dir, "out.jpg"), q)
			assert.True(t, validate.IsValidation(err), "quality %d", q)
		}
	})

	t.Run("corrupt input", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.png")
		require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))

		err := p.Convert(bad, filepath.Join(dir, "out.jpg"), 0)
		assert.Error(t, err)
		assert.False(t, validate.IsValidation(err))
	})
}
