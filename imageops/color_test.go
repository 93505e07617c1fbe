package imageops

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorNames(t *testing.T) {
	c, err := ParseColor("white")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, c)

	c, err = ParseColor("  Red ")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, c)

	// grey and gray are the same color
	grey, err := ParseColor("grey")
	require.NoError(t, err)
	gray, err := ParseColor("gray")
	require.NoError(t, err)
	assert.Equal(t, gray, grey)
}

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 128, 0, 255}, c)

	c, err = ParseColor("#F0A")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 0, 170, 255}, c)
}

func TestParseColorInvalid(t *testing.T) {
	for _, s := range []string{"", "chartreuse-ish", "#12", "#12345", "#gggggg"} {
		_, err := ParseColor(s)
		assert.Error(t, err, "color %q", s)
	}
}
