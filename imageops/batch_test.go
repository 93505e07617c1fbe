package imageops

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datolytix/oneimage/validate"
)

func seedBatchDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writePNG(t, dir, "a.png", 20, 20, color.NRGBA{255, 0, 0, 255})
	writeJPEG(t, dir, "b.jpg", 20, 20, color.NRGBA{0, 255, 0, 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writePNG(t, sub, "c.png", 20, 20, color.NRGBA{0, 0, 255, 255})

	return dir
}

func TestBatchFlat(t *testing.T) {
	p := newTestProcessor(t)
	dir := seedBatchDir(t)

	stats, err := p.Batch(context.Background(), dir, BatchSpec{
		TargetExt: "jpeg",
		Workers:   2,
	})
	require.NoError(t, err)

	// b.jpg already is a JPEG, so only a.png converts; the nested image is
	// not visited without --recursive.
	assert.Equal(t, 1, stats.TotalFiles)
	assert.Equal(t, 1, stats.SuccessfulFiles)
	assert.Equal(t, 0, stats.FailedFiles)

	assert.FileExists(t, filepath.Join(dir, "a.jpeg"))
	assert.NoFileExists(t, filepath.Join(dir, "nested", "c.jpeg"))

	// Originals stay in place.
	assert.FileExists(t, filepath.Join(dir, "a.png"))
}

func TestBatchRecursive(t *testing.T) {
	p := newTestProcessor(t)
	dir := seedBatchDir(t)

	stats, err := p.Batch(context.Background(), dir, BatchSpec{
		TargetExt: "webp",
		Workers:   4,
		Recursive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalFiles)
	assert.Equal(t, 3, stats.SuccessfulFiles)
	assert.FileExists(t, filepath.Join(dir, "nested", "c.webp"))
}

func TestBatchSkipsTargetFormat(t *testing.T) {
	p := newTestProcessor(t)
	dir := t.TempDir()
	writePNG(t, dir, "already.png", 20, 20, color.NRGBA{1, 2, 3, 255})

	stats, err := p.Batch(context.Background(), dir, BatchSpec{
		TargetExt: "png",
		Workers:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalFiles)
}

func TestBatchCountsFailures(t *testing.T) {
	p := newTestProcessor(t)
	dir := t.TempDir()
	writePNG(t, dir, "good.png", 20, 20, color.NRGBA{1, 2, 3, 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.jpg"), []byte("junk"), 0o644))

	stats, err := p.Batch(context.Background(), dir, BatchSpec{
		TargetExt: "webp",
		Workers:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalFiles)
	assert.Equal(t, 1, stats.SuccessfulFiles)
	assert.Equal(t, 1, stats.FailedFiles)
}

func TestBatchValidation(t *testing.T) {
	p := newTestProcessor(t)
	dir := t.TempDir()

	t.Run("zero workers", func(t *testing.T) {
		_, err := p.Batch(context.Background(), dir, BatchSpec{TargetExt: "webp"})
		assert.True(t, validate.IsValidation(err))
	})

	t.Run("unsupported target", func(t *testing.T) {
		_, err := p.Batch(context.Background(), dir, BatchSpec{TargetExt: "bmp", Workers: 1})
		assert.True(t, validate.IsValidation(err))
	})

	t.Run("not a directory", func(t *testing.T) {
		path := writePNG(t, dir, "file.png", 10, 10, color.White)
		_, err := p.Batch(context.Background(), path, BatchSpec{TargetExt: "webp", Workers: 1})
		assert.True(t, validate.IsValidation(err))
	})
}
