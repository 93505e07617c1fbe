// Package validate checks user inputs before any image work starts: path
// existence and extension whitelist, and numeric ranges for quality, opacity,
// dimensions, and worker counts.
package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datolytix/oneimage/config"
)

// Error marks a user-input problem, as opposed to an I/O or codec failure.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// Errorf builds a validation error.
func Errorf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// InputPath checks that path exists, is a regular readable file, and carries
// a supported extension. It returns the absolute path.
func InputPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", Errorf("invalid path %q: %v", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", Errorf("file does not exist: %s", abs)
		}
		return "", Errorf("cannot access file: %s (%v)", abs, err)
	}
	if info.IsDir() {
		return "", Errorf("path is not a file: %s", abs)
	}
	if info.Mode()&0400 == 0 {
		return "", Errorf("file is not readable: %s", abs)
	}

	if err := Extension(abs, "input"); err != nil {
		return "", err
	}
	return abs, nil
}

// OutputPath checks that path carries a supported extension and that its
// parent directory exists (creating it if needed) and is writable. It
// returns the absolute path.
func OutputPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", Errorf("invalid path %q: %v", path, err)
	}

	if err := Extension(abs, "output"); err != nil {
		return "", err
	}

	parent := filepath.Dir(abs)
	if _, err := os.Stat(parent); os.IsNotExist(err) {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "", Errorf("cannot create output directory: %v", err)
		}
	}
	if f, err := os.CreateTemp(parent, ".oneimage-*"); err != nil {
		return "", Errorf("output directory is not writable: %s", parent)
	} else {
		f.Close()
		os.Remove(f.Name())
	}
	return abs, nil
}

// Extension checks the path's extension against the format whitelist.
// role ("input"/"output") only shapes the error message.
func Extension(path, role string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := config.SupportedFormats[ext]; !ok {
		return Errorf("unsupported %s format %q, supported formats: %s",
			role, ext, config.FormatList())
	}
	return nil
}

// Quality checks the 1-100 range. Zero means "unset" and is accepted; the
// caller substitutes the configured default.
func Quality(q int) error {
	if q == 0 {
		return nil
	}
	if q < config.MinQuality || q > config.MaxQuality {
		return Errorf("quality must be between %d and %d, got %d",
			config.MinQuality, config.MaxQuality, q)
	}
	return nil
}

// Opacity checks the 0-100 range.
func Opacity(o int) error {
	if o < config.MinOpacity || o > config.MaxOpacity {
		return Errorf("opacity must be between %d and %d, got %d",
			config.MinOpacity, config.MaxOpacity, o)
	}
	return nil
}

// Dimensions checks resize targets: at least one of width/height given,
// both non-negative.
func Dimensions(width, height int) error {
	if width == 0 && height == 0 {
		return Errorf("at least one of width or height must be specified")
	}
	if width < 0 {
		return Errorf("width must be positive, got %d", width)
	}
	if height < 0 {
		return Errorf("height must be positive, got %d", height)
	}
	return nil
}

// FontSize checks that the watermark font size is positive.
func FontSize(size int) error {
	if size <= 0 {
		return Errorf("font size must be greater than 0, got %d", size)
	}
	return nil
}

// Workers checks the batch worker count.
func Workers(n int) error {
	if n <= 0 {
		return Errorf("workers must be greater than 0, got %d", n)
	}
	return nil
}
