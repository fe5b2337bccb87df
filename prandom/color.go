package prandom

import "github.com/pheney/plib/pcolor"

// Color returns a random opaque color.
func (r *Rand) Color() pcolor.Color {
	return pcolor.RGB(r.r.Float64(), r.r.Float64(), r.r.Float64())
}

// Hue returns an opaque color with a random hue at the given saturation and
// value.
func (r *Rand) Hue(s, v float64) pcolor.Color {
	return pcolor.FromHSV(pcolor.HSV{H: r.Float(0, 360), S: s, V: v})
}

// PaletteColor returns a random color from p, or Transparent and false when
// the palette is empty.
func (r *Rand) PaletteColor(p pcolor.Palette) (pcolor.Color, bool) {
	if p.Len() == 0 {
		return pcolor.Transparent, false
	}
	return p.Colors[r.r.IntN(p.Len())], true
}
