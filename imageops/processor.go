package imageops

import (
	"github.com/datolytix/oneimage/config"
	"github.com/datolytix/oneimage/logger"
)

// Processor runs the image operations with shared config and console.
type Processor struct {
	Config  *config.Config
	Console *logger.Console
}

func NewProcessor(cfg *config.Config, console *logger.Console) *Processor {
	return &Processor{
		Config:  cfg,
		Console: console,
	}
}

// encodeOptions resolves the effective quality: explicit value, else the
// configured default.
func (p *Processor) encodeOptions(quality int) EncodeOptions {
	if quality == 0 {
		quality = p.Config.Quality
	}
	return EncodeOptions{
		Quality:          quality,
		AVIFSpeed:        p.Config.AVIFSpeed,
		AVIFQualityAlpha: p.Config.AVIFQualityAlpha,
	}
}
