package iconsmith

import (
	"fmt"
	"image/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface (premultiplied 16-bit channels).
func (c RGBA) RGBA() (r, g, b, a uint32) {
	af := clamp01(c.A)
	r = uint32(clamp01(c.R) * af * 65535)
	g = uint32(clamp01(c.G) * af * 65535)
	b = uint32(clamp01(c.B) * af * 65535)
	a = uint32(af * 65535)
	return
}

// NRGBA converts the color to a non-premultiplied 8-bit color.NRGBA.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// ParseHex parses a hex color string into an RGBA.
// Supported forms, with or without a leading '#':
//
//	"RGB"       — 4-bit channels, expanded ("f0c" == "ff00cc")
//	"RRGGBB"    — 8-bit channels, opaque
//	"RRGGBBAA"  — 8-bit channels plus alpha
//
// Malformed input returns an error rather than a fallback color: a silently
// substituted default would end up baked into exported assets.
func ParseHex(s string) (RGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 3 && len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("parse hex color %q: want 3, 6 or 8 hex digits, got %d", s, len(hex))
	}
	var digits [8]uint8
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, fmt.Errorf("parse hex color %q: invalid digit %q", s, hex[i])
		}
		digits[i] = d
	}

	var r, g, b, a uint8
	a = 255
	switch len(hex) {
	case 3:
		r = digits[0] * 17
		g = digits[1] * 17
		b = digits[2] * 17
	case 8:
		a = digits[6]<<4 | digits[7]
		fallthrough
	case 6:
		r = digits[0]<<4 | digits[1]
		g = digits[2]<<4 | digits[3]
		b = digits[4]<<4 | digits[5]
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// MustHex is ParseHex for constant colors; it panics on malformed input.
func MustHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the lowercase "#rrggbb" form of the color, ignoring alpha.
// For any valid 6-digit input, ParseHex followed by Hex round-trips
// (case-insensitively).
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp255(c.R*255)),
		uint8(clamp255(c.G*255)),
		uint8(clamp255(c.B*255)))
}

// Lerp interpolates linearly between two colors at fraction t in [0, 1].
// Interpolation is per-channel in plain RGB space with no gamma correction,
// the same blend used for gradient color stops throughout the renderer.
func Lerp(a, b RGBA, t float64) RGBA {
	t = clamp01(t)
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// hexDigit decodes one hex character.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// clamp01 clamps a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 clamps a value to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors.
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
)
