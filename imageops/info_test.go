package imageops

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datolytix/oneimage/validate"
)

func TestInfo(t *testing.T) {
	p := newTestProcessor(t)
	dir := t.TempDir()
	path := writePNG(t, dir, "in.png", 123, 45, color.NRGBA{9, 9, 9, 255})

	info, err := p.Info(path)
	require.NoError(t, err)

	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 123, info.Width)
	assert.Equal(t, 45, info.Height)
	assert.Greater(t, info.Bytes, int64(0))
}

func TestInfoMissingFile(t *testing.T) {
	p := newTestProcessor(t)

	_, err := p.Info(filepath.Join(t.TempDir(), "missing.png"))
	assert.True(t, validate.IsValidation(err))
}
