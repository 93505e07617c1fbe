package imageops

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/datolytix/oneimage/validate"
)

var namedColors = map[string]color.NRGBA{
	"white":   {255, 255, 255, 255},
	"black":   {0, 0, 0, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"orange":  {255, 165, 0, 255},
	"purple":  {128, 0, 128, 255},
	"silver":  {192, 192, 192, 255},
}

// ParseColor accepts a color name or a #rgb / #rrggbb hex value.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") {
		return parseHex(name[1:])
	}
	return color.NRGBA{}, validate.Errorf("unknown color %q", s)
}

func parseHex(hex string) (color.NRGBA, error) {
	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6:
	default:
		return color.NRGBA{}, validate.Errorf("invalid hex color %q", "#"+hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, validate.Errorf("invalid hex color %q", "#"+hex)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
