// Package colorconv converts colors between HEX, RGB and HSL notations.
package colorconv

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor reports a value outside its notation's range.
var ErrInvalidColor = errors.New("invalid color")

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// RGB holds 0-255 channels.
type RGB struct {
	R, G, B int
}

// String renders rgb(r, g, b).
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL holds hue in degrees and saturation and lightness in percent.
type HSL struct {
	H, S, L int
}

// String renders hsl(h, s%, l%).
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Color is one color in every notation.
type Color struct {
	Hex string
	RGB RGB
	HSL HSL
}

// Default is the site primary color.
func Default() Color {
	c, _ := ParseHex("#3b82f6")
	return c
}

// ParseHex accepts #rrggbb or #rgb with or without the leading hash.
func ParseHex(value string) (Color, error) {
	trimmed := strings.TrimSpace(value)
	if !hexPattern.MatchString(trimmed) {
		return Color{}, fmt.Errorf("%w: %q is not a hex color", ErrInvalidColor, value)
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	parsed, err := colorful.Hex(strings.ToLower(trimmed))
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return fromColorful(parsed), nil
}

// FromRGB builds a color from 0-255 channels.
func FromRGB(r, g, b int) (Color, error) {
	for _, channel := range []int{r, g, b} {
		if channel < 0 || channel > 255 {
			return Color{}, fmt.Errorf("%w: channel %d outside 0-255", ErrInvalidColor, channel)
		}
	}
	return fromColorful(colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}), nil
}

// FromHSL builds a color from hue 0-360 and saturation and lightness 0-100.
func FromHSL(h, s, l int) (Color, error) {
	if h < 0 || h > 360 {
		return Color{}, fmt.Errorf("%w: hue %d outside 0-360", ErrInvalidColor, h)
	}
	if s < 0 || s > 100 || l < 0 || l > 100 {
		return Color{}, fmt.Errorf("%w: saturation and lightness must be 0-100", ErrInvalidColor)
	}
	converted := colorful.Hsl(float64(h%360), float64(s)/100, float64(l)/100).Clamped()
	return fromColorful(converted), nil
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	hue := int(math.Round(h)) % 360
	return Color{
		Hex: c.Hex(),
		RGB: RGB{R: int(r), G: int(g), B: int(b)},
		HSL: HSL{H: hue, S: int(math.Round(s * 100)), L: int(math.Round(l * 100))},
	}
}
