package raster

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"MyPaintBoard/internal/errors"
)

// Color is one pixel's channel tuple, stored exactly as the surface stores it.
type Color struct {
	R, G, B, A uint8
}

var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}
)

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// SameRGB compares the color channels only. Alpha is ignored.
func (c Color) SameRGB(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// Opaque returns c with full alpha.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// Hex formats the color channels as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// ParseColor accepts "#RRGGBB", "#RGB" (the '#' is optional) and "rgb(r, g, b)".
// The result is always opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(s), "rgb(") {
		return ParseRGB(s)
	}
	return ParseHex(s)
}

// ParseHex parses "#RRGGBB" or the "#RGB" shorthand.
func ParseHex(s string) (Color, error) {
	if !hexPattern.MatchString(s) {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "malformed hex color %q", s)
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse hex color %q", s)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b, 255}, nil
}

// ParseRGB parses the "rgb(r, g, b)" form browsers report for swatch backgrounds.
func ParseRGB(s string) (Color, error) {
	m := rgbPattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "malformed rgb color %q", s)
	}
	var ch [3]uint8
	for i, v := range m[1:] {
		n, err := strconv.Atoi(v)
		if err != nil || n > 255 {
			return Color{}, errors.New(errors.ErrCodeInvalidColor, "channel %q out of range in %q", v, s)
		}
		ch[i] = uint8(n)
	}
	return Color{ch[0], ch[1], ch[2], 255}, nil
}
