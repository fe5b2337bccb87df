package pcolor

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/pheney/plib/pmath"
)

// ErrBadHex is returned when a hex color string cannot be parsed.
var ErrBadHex = errors.New("pcolor: malformed hex color")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Named colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Yellow      = Color{1, 0.92, 0.016, 1}
	Cyan        = Color{0, 1, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// FromRGBA8 builds a color from 8-bit channels.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// RGBA8 returns the color as 8-bit channels, clamping out-of-range components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	return uint8(math.Round(pmath.Clamp01(v) * 255))
}

// NRGBA converts to the standard library's non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromStd converts any color.Color.
func FromStd(c color.Color) Color {
	if c == nil {
		return Transparent
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		float64(n.R) / 0xffff,
		float64(n.G) / 0xffff,
		float64(n.B) / 0xffff,
		float64(n.A) / 0xffff,
	}
}

// Hex formats the color as #rrggbb, or #rrggbbaa when not fully opaque.
func (c Color) Hex() string {
	r, g, b, a := c.RGBA8()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses #rgb, #rgba, #rrggbb or #rrggbbaa. The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4:
		// Expand shorthand: "f80" -> "ff8800".
		var b strings.Builder
		for _, ch := range h {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		h = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return FromRGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParseHex is like ParseHex but panics on error. Intended for literals.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText encodes the color as a hex string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Lerp interpolates every channel toward to, with t clamped to [0, 1].
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		pmath.Lerp(c.R, to.R, t),
		pmath.Lerp(c.G, to.G, t),
		pmath.Lerp(c.B, to.B, t),
		pmath.Lerp(c.A, to.A, t),
	}
}

// Premultiply returns the color with RGB scaled by alpha.
func (c Color) Premultiply() Color {
	return Color{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// Equal reports whether every channel of a and b differs by at most eps.
func Equal(a, b Color, eps float64) bool {
	return pmath.Approximately(a.R, b.R, eps) &&
		pmath.Approximately(a.G, b.G, eps) &&
		pmath.Approximately(a.B, b.B, eps) &&
		pmath.Approximately(a.A, b.A, eps)
}
