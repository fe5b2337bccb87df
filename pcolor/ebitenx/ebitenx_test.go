package ebitenx

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pheney/plib/pcolor"
)

func TestBlendMapping(t *testing.T) {
	modes := []struct {
		mode   pcolor.BlendMode
		expect ebiten.Blend
	}{
		{pcolor.BlendNormal, ebiten.BlendSourceOver},
		{pcolor.BlendAdd, ebiten.BlendLighter},
		{pcolor.BlendErase, ebiten.BlendDestinationOut},
		{pcolor.BlendBelow, ebiten.BlendDestinationOver},
		{pcolor.BlendNone, ebiten.BlendCopy},
	}
	for _, tt := range modes {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got, ok := Blend(tt.mode)
			if !ok || got != tt.expect {
				t.Errorf("Blend(%s) = %v, %v, want %v", tt.mode, got, ok, tt.expect)
			}
		})
	}

	// Custom blends: verify they return non-zero (custom structs)
	zero := ebiten.Blend{}
	for _, mode := range []pcolor.BlendMode{
		pcolor.BlendMultiply, pcolor.BlendScreen, pcolor.BlendMask,
		pcolor.BlendDarken, pcolor.BlendLighten, pcolor.BlendSubtract,
	} {
		t.Run(mode.String(), func(t *testing.T) {
			got, ok := Blend(mode)
			if !ok || got == zero {
				t.Errorf("Blend(%s) = %v, %v, want a custom blend", mode, got, ok)
			}
		})
	}
}

func TestBlendFallback(t *testing.T) {
	for _, mode := range []pcolor.BlendMode{pcolor.BlendOverlay, pcolor.BlendDifference} {
		got, ok := Blend(mode)
		if ok {
			t.Errorf("Blend(%s) reported a GPU equivalent", mode)
		}
		if got != ebiten.BlendSourceOver {
			t.Errorf("Blend(%s) fallback = %v, want source-over", mode, got)
		}
	}
}

func TestColorScaleRoundTrip(t *testing.T) {
	c := pcolor.Color{R: 1, G: 0.5, B: 0.25, A: 0.5}
	cs := ColorScale(c)
	if math.Abs(float64(cs.R())-0.5) > 1e-6 || math.Abs(float64(cs.A())-0.5) > 1e-6 {
		t.Errorf("ColorScale = (%v, %v, %v, %v), want premultiplied", cs.R(), cs.G(), cs.B(), cs.A())
	}
	back := FromColorScale(cs)
	if !pcolor.Equal(back, c, 1e-6) {
		t.Errorf("FromColorScale = %+v, want %+v", back, c)
	}
}

func TestColorScaleWhiteIsIdentity(t *testing.T) {
	if got := ColorScale(pcolor.White); got != (ebiten.ColorScale{}) {
		t.Errorf("ColorScale(White) = %v, want identity", got)
	}
	if got := FromColorScale(ebiten.ColorScale{}); got != pcolor.White {
		t.Errorf("FromColorScale(identity) = %+v, want white", got)
	}
}

func BenchmarkBlendMapping(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		for m := pcolor.BlendNormal; m <= pcolor.BlendSubtract; m++ {
			_, _ = Blend(m)
		}
	}
}
