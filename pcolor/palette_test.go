package pcolor

import (
	"math"
	"testing"
)

func hues(colors []Color) []float64 {
	out := make([]float64, len(colors))
	for i, c := range colors {
		out[i] = c.ToHSV().H
	}
	return out
}

func assertHues(t *testing.T, name string, colors []Color, want ...float64) {
	t.Helper()
	got := hues(colors)
	if len(got) != len(want) {
		t.Fatalf("%s: got %d colors, want %d", name, len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("%s hue[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestHarmonies(t *testing.T) {
	base := FromHSV(HSV{30, 1, 1})
	assertHues(t, "Complementary", Complementary(base), 30, 210)
	assertHues(t, "SplitComplementary", SplitComplementary(base, 30), 30, 180, 240)
	assertHues(t, "Triadic", Triadic(base), 30, 150, 270)
	assertHues(t, "Tetradic", Tetradic(base), 30, 120, 210, 300)
	assertHues(t, "Analogous", Analogous(base, 3, 20), 10, 30, 50)
	if Analogous(base, 0, 20) != nil {
		t.Error("Analogous(0) should be nil")
	}
}

func TestMonochromatic(t *testing.T) {
	got := Monochromatic(RGB(0, 0, 1), 4)
	for i, c := range got {
		want := float64(i+1) / 4
		if v := c.ToHSV().V; math.Abs(v-want) > 1e-9 {
			t.Errorf("V[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestShadesAndTints(t *testing.T) {
	shades := Shades(Red, 4)
	assertColor(t, "first shade", shades[0], Red)
	assertColor(t, "last shade", shades[3], RGB(0.25, 0, 0))

	tints := Tints(Red, 2)
	assertColor(t, "tint", tints[1], RGB(1, 0.5, 0.5))
}

func TestGradient(t *testing.T) {
	g := Gradient(Black, White, 3)
	assertColor(t, "start", g[0], Black)
	assertColor(t, "mid", g[1], Gray)
	assertColor(t, "end", g[2], White)
	if len(Gradient(Black, White, 1)) != 1 || Gradient(Black, White, 0) != nil {
		t.Error("Gradient edge sizes")
	}
}

func TestPaletteSample(t *testing.T) {
	p := Palette{Name: "rgb", Colors: []Color{Red, Green, Blue}}
	assertColor(t, "t=0", p.Sample(0), Red)
	assertColor(t, "t=0.25", p.Sample(0.25), RGB(0.5, 0.5, 0))
	assertColor(t, "t=0.5", p.Sample(0.5), Green)
	assertColor(t, "t=1", p.Sample(1), Blue)
	assertColor(t, "t>1 clamps", p.Sample(7), Blue)
	assertColor(t, "empty", Palette{}.Sample(0.5), Transparent)
	assertColor(t, "single", Palette{Colors: []Color{Cyan}}.Sample(0.9), Cyan)
}

func TestPaletteNearest(t *testing.T) {
	p := Palette{Colors: []Color{Black, Red, White}}
	c, i := p.Nearest(RGB(0.9, 0.1, 0.2))
	if i != 1 || c != Red {
		t.Errorf("Nearest = %v, %d, want red, 1", c, i)
	}
	if _, i := (Palette{}).Nearest(Red); i != -1 {
		t.Errorf("empty Nearest index = %d, want -1", i)
	}
}

func TestPaletteReverseAndShuffle(t *testing.T) {
	p := Palette{Name: "x", Colors: []Color{Red, Green, Blue}}
	r := p.Reverse()
	if r.Colors[0] != Blue || r.Colors[2] != Red || p.Colors[0] != Red {
		t.Errorf("Reverse = %v (orig %v)", r.Colors, p.Colors)
	}

	// A deterministic "shuffle" that swaps the ends.
	swapEnds := func(n int, swap func(i, j int)) { swap(0, n-1) }
	s := p.Shuffle(swapEnds)
	if s.Colors[0] != Blue || s.Len() != 3 || p.Colors[0] != Red {
		t.Errorf("Shuffle = %v (orig %v)", s.Colors, p.Colors)
	}
}
