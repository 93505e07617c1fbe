package imageops

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"photo.png":        PNG,
		"photo.jpg":        JPEG,
		"photo.JPEG":       JPEG,
		"dir/photo.webp":   WebP,
		"archive/img.avif": AVIF,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("document.pdf")
	assert.Error(t, err)
}

func TestFormatLossy(t *testing.T) {
	assert.False(t, PNG.Lossy())
	assert.True(t, JPEG.Lossy())
	assert.True(t, WebP.Lossy())
	assert.True(t, AVIF.Lossy())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := solidImage(40, 30, color.NRGBA{200, 30, 30, 255})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "out.png")
		require.NoError(t, Save(src, path, EncodeOptions{}))

		img, format := decodeFile(t, path)
		assert.Equal(t, "png", format)
		assert.Equal(t, 40, img.Bounds().Dx())
		assert.Equal(t, 30, img.Bounds().Dy())
	})

	t.Run("jpeg", func(t *testing.T) {
		path := filepath.Join(dir, "out.jpg")
		require.NoError(t, Save(src, path, EncodeOptions{Quality: 90}))

		_, format := decodeFile(t, path)
		assert.Equal(t, "jpeg", format)
	})

	t.Run("webp", func(t *testing.T) {
		path := filepath.Join(dir, "out.webp")
		require.NoError(t, Save(src, path, EncodeOptions{Quality: 80}))

		img, format := decodeFile(t, path)
		assert.Equal(t, "webp", format)
		assert.Equal(t, 40, img.Bounds().Dx())
	})
}

func TestSaveLeavesNoTempFileOnError(t *testing.T) {
	dir := t.TempDir()
	src := solidImage(10, 10, color.White)

	err := Save(src, filepath.Join(dir, "out.tiff"), EncodeOptions{})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFlattenOnWhite(t *testing.T) {
	transparent := solidImage(10, 10, color.NRGBA{0, 0, 255, 0})

	flat := flattenOnWhite(transparent)
	r, g, b, a := flat.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)
}
