package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DefaultQuality, cfg.Quality)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogSizeMB, cfg.LogSizeMB)
	assert.Equal(t, DefaultAVIFSpeed, cfg.AVIFSpeed)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ONEIMAGE_QUALITY", "92")
	t.Setenv("ONEIMAGE_LOG_LEVEL", "debug")
	t.Setenv("ONEIMAGE_LOG_FILE", "/tmp/oneimage-test.log")

	cfg := Load()

	assert.Equal(t, 92, cfg.Quality)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/oneimage-test.log", cfg.LogFile)
}

func TestSupportedFormats(t *testing.T) {
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".webp", ".avif"} {
		_, ok := SupportedFormats[ext]
		assert.True(t, ok, "extension %s", ext)
	}
	_, ok := SupportedFormats[".bmp"]
	assert.False(t, ok)
}

func TestFormatList(t *testing.T) {
	list := FormatList()
	assert.Equal(t, ".avif, .jpeg, .jpg, .png, .webp", list)
}
