package pcolor

import (
	"math"

	"github.com/pheney/plib/pmath"
)

// Palette is a named, ordered list of colors.
type Palette struct {
	Name   string  `yaml:"name"`
	Colors []Color `yaml:"colors"`
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.Colors)
}

// Sample returns the color at position t in [0, 1] along the palette,
// interpolating linearly between neighbours. An empty palette yields Transparent.
func (p Palette) Sample(t float64) Color {
	n := len(p.Colors)
	switch n {
	case 0:
		return Transparent
	case 1:
		return p.Colors[0]
	}
	pos := pmath.Clamp01(t) * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return p.Colors[n-1]
	}
	return p.Colors[i].Lerp(p.Colors[i+1], pos-float64(i))
}

// Nearest returns the palette color closest to c in RGB space and its index.
// The index is -1 for an empty palette.
func (p Palette) Nearest(c Color) (Color, int) {
	best := -1
	bestD := math.Inf(1)
	for i, pc := range p.Colors {
		dr, dg, db := pc.R-c.R, pc.G-c.G, pc.B-c.B
		d := dr*dr + dg*dg + db*db
		if d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return Transparent, -1
	}
	return p.Colors[best], best
}

// Reverse returns a copy with the colors in reverse order.
func (p Palette) Reverse() Palette {
	out := Palette{Name: p.Name, Colors: make([]Color, len(p.Colors))}
	for i, c := range p.Colors {
		out.Colors[len(p.Colors)-1-i] = c
	}
	return out
}

// Shuffle returns a shuffled copy. shuffle has the signature of
// (*rand.Rand).Shuffle so any seeded generator can drive it.
func (p Palette) Shuffle(shuffle func(n int, swap func(i, j int))) Palette {
	out := Palette{Name: p.Name, Colors: append([]Color(nil), p.Colors...)}
	shuffle(len(out.Colors), func(i, j int) {
		out.Colors[i], out.Colors[j] = out.Colors[j], out.Colors[i]
	})
	return out
}

// --- Generators ---

func hueSteps(base Color, steps ...float64) []Color {
	h := base.ToHSV()
	out := make([]Color, len(steps))
	for i, s := range steps {
		hh := h
		hh.H += s
		out[i] = FromHSVA(hh, base.A)
	}
	return out
}

// Analogous returns n colors whose hues are spaced spread degrees apart,
// centered on base.
func Analogous(base Color, n int, spread float64) []Color {
	if n <= 0 {
		return nil
	}
	steps := make([]float64, n)
	mid := float64(n-1) / 2
	for i := range steps {
		steps[i] = (float64(i) - mid) * spread
	}
	return hueSteps(base, steps...)
}

// Complementary returns base and its complement.
func Complementary(base Color) []Color {
	return hueSteps(base, 0, 180)
}

// SplitComplementary returns base and the two colors angle degrees either side
// of its complement.
func SplitComplementary(base Color, angle float64) []Color {
	return hueSteps(base, 0, 180-angle, 180+angle)
}

// Triadic returns three colors evenly spaced on the hue wheel.
func Triadic(base Color) []Color {
	return hueSteps(base, 0, 120, 240)
}

// Tetradic returns four colors evenly spaced on the hue wheel.
func Tetradic(base Color) []Color {
	return hueSteps(base, 0, 90, 180, 270)
}

// Monochromatic returns n colors sharing base's hue and saturation with value
// rising evenly to 1.
func Monochromatic(base Color, n int) []Color {
	if n <= 0 {
		return nil
	}
	h := base.ToHSV()
	out := make([]Color, n)
	for i := range out {
		hh := h
		hh.V = float64(i+1) / float64(n)
		out[i] = FromHSVA(hh, base.A)
	}
	return out
}

// Shades returns n colors from base darkening toward black (exclusive).
func Shades(base Color, n int) []Color {
	return mixToward(base, Black.WithAlpha(base.A), n)
}

// Tints returns n colors from base lightening toward white (exclusive).
func Tints(base Color, n int) []Color {
	return mixToward(base, White.WithAlpha(base.A), n)
}

func mixToward(base, target Color, n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	for i := range out {
		out[i] = base.Lerp(target, float64(i)/float64(n))
	}
	return out
}

// Gradient returns n colors evenly spaced from a to b, both ends included.
func Gradient(a, b Color, n int) []Color {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []Color{a}
	}
	out := make([]Color, n)
	for i := range out {
		out[i] = a.Lerp(b, float64(i)/float64(n-1))
	}
	return out
}
