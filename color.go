package fotoprint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	ColorBlack     = Color{0, 0, 0, 1}
	ColorWhite     = Color{1, 1, 1, 1}
	ColorCream     = MustParseColor("#f4f2e5")
	ColorHighlight = MustParseColor("#999696")
)

// namedColors covers the CSS names the editor's shapes use.
var namedColors = map[string]Color{
	"black":       ColorBlack,
	"white":       ColorWhite,
	"red":         {1, 0, 0, 1},
	"green":       {0, 128.0 / 255, 0, 1},
	"blue":        {0, 0, 1, 1},
	"yellow":      {1, 1, 0, 1},
	"orange":      {1, 165.0 / 255, 0, 1},
	"gray":        {128.0 / 255, 128.0 / 255, 128.0 / 255, 1},
	"transparent": {},
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa", or one of a small set of
// CSS color names.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("parse color %q: unknown color", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color %q: bad length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic("fotoprint: " + err.Error())
	}
	return c
}

// Hex returns the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// Adjust shifts every channel by percent/100 of full range and clamps,
// so Adjust(-20) darkens by a fifth of the range.
func (c Color) Adjust(percent float64) Color {
	d := percent / 100
	return Color{
		R: clamp01(c.R + d),
		G: clamp01(c.G + d),
		B: clamp01(c.B + d),
		A: c.A,
	}
}

// RGBA converts to a standard library color.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// UnmarshalText lets Color appear as a string in YAML configuration and
// environment variables.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
