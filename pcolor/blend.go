package pcolor

import (
	"math"

	"github.com/pheney/plib/pmath"
)

// BlendMode selects a compositing operation.
type BlendMode uint8

const (
	BlendNormal     BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                         // additive / lighter
	BlendMultiply                    // multiply (source * destination; only darkens)
	BlendScreen                      // screen (1 - (1-src)*(1-dst); only brightens)
	BlendErase                       // destination-out (punch transparent holes)
	BlendMask                        // clip destination to source alpha
	BlendBelow                       // destination-over (draw behind existing content)
	BlendNone                        // opaque copy (skip blending)
	BlendOverlay                     // multiply or screen depending on destination
	BlendDarken                      // per-channel minimum
	BlendLighten                     // per-channel maximum
	BlendDifference                  // absolute difference
	BlendSubtract                    // destination minus source, floored at 0
)

var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendAdd:        "add",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendErase:      "erase",
	BlendMask:       "mask",
	BlendBelow:      "below",
	BlendNone:       "none",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendDifference: "difference",
	BlendSubtract:   "subtract",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "unknown"
}

// ParseBlendMode resolves a mode by its String name.
func ParseBlendMode(name string) (BlendMode, bool) {
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), true
		}
	}
	return BlendNormal, false
}

// separable returns the per-channel blend function B(cb, cs) for modes that
// composite with the standard source-over alpha formula.
func (m BlendMode) separable() func(cb, cs float64) float64 {
	switch m {
	case BlendAdd:
		return func(cb, cs float64) float64 { return math.Min(1, cb+cs) }
	case BlendMultiply:
		return func(cb, cs float64) float64 { return cb * cs }
	case BlendScreen:
		return screen
	case BlendOverlay:
		return func(cb, cs float64) float64 {
			if cb <= 0.5 {
				return cs * 2 * cb
			}
			return screen(cs, 2*cb-1)
		}
	case BlendDarken:
		return math.Min
	case BlendLighten:
		return math.Max
	case BlendDifference:
		return func(cb, cs float64) float64 { return math.Abs(cb - cs) }
	case BlendSubtract:
		return func(cb, cs float64) float64 { return math.Max(0, cb-cs) }
	default:
		return func(_, cs float64) float64 { return cs }
	}
}

func screen(cb, cs float64) float64 {
	return cb + cs - cb*cs
}

// Blend composites src over dst using mode. Inputs and output are straight
// (non-premultiplied) colors; components are clamped to [0, 1] first.
func Blend(dst, src Color, mode BlendMode) Color {
	dst = dst.Clamp()
	src = src.Clamp()

	switch mode {
	case BlendNone:
		return src
	case BlendErase:
		return Color{dst.R, dst.G, dst.B, dst.A * (1 - src.A)}
	case BlendMask:
		return Color{dst.R, dst.G, dst.B, dst.A * src.A}
	case BlendBelow:
		return Blend(src, dst, BlendNormal)
	}

	ab, as := dst.A, src.A
	ao := as + ab*(1-as)
	if ao == 0 {
		return Transparent
	}
	fn := mode.separable()
	ch := func(cb, cs float64) float64 {
		v := (1-ab)*as*cs + as*ab*fn(cb, cs) + (1-as)*ab*cb
		return pmath.Clamp01(v / ao)
	}
	return Color{ch(dst.R, src.R), ch(dst.G, src.G), ch(dst.B, src.B), ao}
}
