// Package config holds the tool-wide settings: format whitelist, quality
// defaults, logging defaults, and AVIF encoder knobs. Values come from
// built-in defaults overridden by ONEIMAGE_* environment variables.
package config

import (
	"sort"
	"strings"

	"github.com/spf13/viper"
)

const (
	MinQuality     = 1
	MaxQuality     = 100
	DefaultQuality = 85

	MinOpacity     = 0
	MaxOpacity     = 100
	DefaultOpacity = 50

	DefaultFontSize = 36

	DefaultLogFile   = "logs/oneimage.log"
	DefaultLogLevel  = "info"
	DefaultLogSizeMB = 1

	DefaultAVIFSpeed        = 6
	DefaultAVIFQualityAlpha = 80
)

// SupportedFormats maps lowercase file extensions to canonical format names.
var SupportedFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".webp": "webp",
	".avif": "avif",
}

// FormatList returns the sorted, comma-separated extension whitelist for
// error messages.
func FormatList() string {
	exts := make([]string, 0, len(SupportedFormats))
	for ext := range SupportedFormats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

type Config struct {
	Quality   int
	LogFile   string
	LogLevel  string
	LogSizeMB int

	AVIFSpeed        int
	AVIFQualityAlpha int

	Workers int
}

// Load builds a Config from defaults and ONEIMAGE_* environment overrides,
// e.g. ONEIMAGE_QUALITY=90 or ONEIMAGE_LOG_LEVEL=debug.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("oneimage")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("quality", DefaultQuality)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_size_mb", DefaultLogSizeMB)
	v.SetDefault("avif_speed", DefaultAVIFSpeed)
	v.SetDefault("avif_quality_alpha", DefaultAVIFQualityAlpha)
	v.SetDefault("workers", 0)

	return &Config{
		Quality:          v.GetInt("quality"),
		LogFile:          v.GetString("log_file"),
		LogLevel:         v.GetString("log_level"),
		LogSizeMB:        v.GetInt("log_size_mb"),
		AVIFSpeed:        v.GetInt("avif_speed"),
		AVIFQualityAlpha: v.GetInt("avif_quality_alpha"),
		Workers:          v.GetInt("workers"),
	}
}
