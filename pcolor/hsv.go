package pcolor

import (
	"math"

	"github.com/pheney/plib/pmath"
)

// HSV is a hue/saturation/value triple. H is in degrees [0, 360); S and V in [0, 1].
type HSV struct {
	H, S, V float64
}

// HSL is a hue/saturation/lightness triple. H is in degrees [0, 360); S and L in [0, 1].
type HSL struct {
	H, S, L float64
}

// hue computes the shared hue term of HSV and HSL.
func hue(r, g, b, maxC, diff float64) float64 {
	if diff == 0 {
		return 0
	}
	var h float64
	switch maxC {
	case r:
		h = 60 * math.Mod((g-b)/diff, 6)
	case g:
		h = 60 * ((b-r)/diff + 2)
	default:
		h = 60 * ((r-g)/diff + 4)
	}
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

// ToHSV converts the RGB channels to HSV. Alpha is dropped.
func (c Color) ToHSV() HSV {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	diff := maxC - minC

	var s float64
	if maxC != 0 {
		s = diff / maxC
	}
	return HSV{hue(c.R, c.G, c.B, maxC, diff), s, maxC}
}

// ToHSL converts the RGB channels to HSL. Alpha is dropped.
func (c Color) ToHSL() HSL {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	diff := maxC - minC
	l := (maxC + minC) / 2

	var s float64
	if diff != 0 {
		s = diff / (1 - math.Abs(2*l-1))
	}
	return HSL{hue(c.R, c.G, c.B, maxC, diff), s, l}
}

// fromHueChroma places chroma on the RGB cube for hue h and adds m to each channel.
func fromHueChroma(h, chroma, m, a float64) Color {
	h = pmath.Repeat(h, 360)
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return Color{r + m, g + m, b + m, a}
}

// FromHSV builds an opaque color from HSV.
func FromHSV(h HSV) Color {
	return FromHSVA(h, 1)
}

// FromHSVA builds a color from HSV with the given alpha.
func FromHSVA(h HSV, a float64) Color {
	s := pmath.Clamp01(h.S)
	v := pmath.Clamp01(h.V)
	chroma := v * s
	return fromHueChroma(h.H, chroma, v-chroma, a)
}

// FromHSL builds an opaque color from HSL.
func FromHSL(h HSL) Color {
	return FromHSLA(h, 1)
}

// FromHSLA builds a color from HSL with the given alpha.
func FromHSLA(h HSL, a float64) Color {
	s := pmath.Clamp01(h.S)
	l := pmath.Clamp01(h.L)
	chroma := (1 - math.Abs(2*l-1)) * s
	return fromHueChroma(h.H, chroma, l-chroma/2, a)
}
