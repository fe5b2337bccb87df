package pcolor

import (
	"math"

	"github.com/pheney/plib/pmath"
)

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{pmath.Clamp01(c.R), pmath.Clamp01(c.G), pmath.Clamp01(c.B), pmath.Clamp01(c.A)}
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Invert inverts RGB and keeps alpha.
func (c Color) Invert() Color {
	return Color{1 - c.R, 1 - c.G, 1 - c.B, c.A}
}

// Grayscale returns the Rec. 709 luma of c as a gray color.
func (c Color) Grayscale() Color {
	y := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	return Color{y, y, y, c.A}
}

// Luminance returns the WCAG relative luminance of c (sRGB linearized).
func (c Color) Luminance() float64 {
	lin := func(v float64) float64 {
		v = pmath.Clamp01(v)
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1, 21].
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Brightness scales RGB by f and clamps.
func (c Color) Brightness(f float64) Color {
	return Color{pmath.Clamp01(c.R * f), pmath.Clamp01(c.G * f), pmath.Clamp01(c.B * f), c.A}
}

// Saturate adds amount to the HSL saturation. Negative amounts desaturate.
func (c Color) Saturate(amount float64) Color {
	h := c.ToHSL()
	h.S = pmath.Clamp01(h.S + amount)
	return FromHSLA(h, c.A)
}

// ShiftHue rotates the hue by deg degrees.
func (c Color) ShiftHue(deg float64) Color {
	h := c.ToHSV()
	h.H += deg
	return FromHSVA(h, c.A)
}

// Complement returns the color on the opposite side of the hue wheel.
func (c Color) Complement() Color {
	return c.ShiftHue(180)
}
