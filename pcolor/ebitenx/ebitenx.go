// Package ebitenx converts pcolor values into their Ebitengine equivalents.
package ebitenx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pheney/plib/pcolor"
)

// ColorScale returns an ebiten.ColorScale that tints by c. ColorScale is
// premultiplied, so RGB are scaled by alpha.
func ColorScale(c pcolor.Color) ebiten.ColorScale {
	c = c.Clamp()
	var cs ebiten.ColorScale
	cs.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	return cs
}

// FromColorScale converts a premultiplied ColorScale back to a straight color.
// Components above 1 are clamped.
func FromColorScale(cs ebiten.ColorScale) pcolor.Color {
	a := float64(cs.A())
	if a == 0 {
		return pcolor.Transparent
	}
	return pcolor.Color{
		R: float64(cs.R()) / a,
		G: float64(cs.G()) / a,
		B: float64(cs.B()) / a,
		A: a,
	}.Clamp()
}

// Blend returns the ebiten.Blend value corresponding to mode. Modes with no
// fixed-function equivalent (Overlay, Difference) fall back to source-over and
// report false.
func Blend(mode pcolor.BlendMode) (ebiten.Blend, bool) {
	switch mode {
	case pcolor.BlendNormal:
		return ebiten.BlendSourceOver, true
	case pcolor.BlendAdd:
		return ebiten.BlendLighter, true
	case pcolor.BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}, true
	case pcolor.BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}, true
	case pcolor.BlendErase:
		return ebiten.BlendDestinationOut, true
	case pcolor.BlendMask:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorZero,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}, true
	case pcolor.BlendBelow:
		return ebiten.BlendDestinationOver, true
	case pcolor.BlendNone:
		return ebiten.BlendCopy, true
	case pcolor.BlendDarken:
		return minMaxBlend(ebiten.BlendOperationMin), true
	case pcolor.BlendLighten:
		return minMaxBlend(ebiten.BlendOperationMax), true
	case pcolor.BlendSubtract:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationReverseSubtract,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}, true
	default:
		return ebiten.BlendSourceOver, false
	}
}

// minMaxBlend ignores blend factors for RGB (min/max operations discard them)
// and keeps source-over alpha.
func minMaxBlend(op ebiten.BlendOperation) ebiten.Blend {
	return ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorOne,
		BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           op,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
}
