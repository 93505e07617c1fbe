package imageops

import (
	"os"

	"github.com/datolytix/oneimage/validate"
)

// FileInfo summarizes an image file without fully decoding it.
type FileInfo struct {
	Path   string
	Format string
	Width  int
	Height int
	Bytes  int64
}

// Info reads the header and size of a single image file.
func (p *Processor) Info(path string) (*FileInfo, error) {
	in, err := validate.InputPath(path)
	if err != nil {
		return nil, err
	}

	cfg, format, err := DecodeConfig(in)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(in)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Path:   in,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Bytes:  stat.Size(),
	}, nil
}
