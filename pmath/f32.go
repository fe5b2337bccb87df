package pmath

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// float32 helpers for hot paths. These avoid the float32->float64 round trip
// that the standard math package requires.

// Clamp32 clamps v between lo and hi.
func Clamp32(v, lo, hi float32) float32 {
	return Clamp(v, lo, hi)
}

// Lerp32 linearly interpolates between a and b by t, unclamped.
func Lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// NormalizeAngle32 wraps an angle to [-Pi, Pi).
func NormalizeAngle32(a float32) float32 {
	a = math32.Mod(a+math32.Pi, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a - math32.Pi
}

// FastSin approximates sin(x) using a parabola with a correction term.
// Accurate to ~0.001 for all x.
func FastSin(x float32) float32 {
	x = NormalizeAngle32(x)
	const pi2 = math32.Pi * math32.Pi
	y := 4 * x * (math32.Pi - math32.Abs(x)) / pi2
	return 0.225*(y*math32.Abs(y)-y) + y
}

// FastCos approximates cos(x) using FastSin.
func FastCos(x float32) float32 {
	return FastSin(x + math32.Pi/2)
}

// FastSqrt approximates sqrt(x) using the fast inverse square root trick with
// one Newton step.
func FastSqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	i := math.Float32bits(x)
	i = 0x5f375a86 - (i >> 1)
	y := math.Float32frombits(i)
	y = y * (1.5 - 0.5*x*y*y)
	return x * y
}

// Angle32 is a float32 angle in radians.
type Angle32 float32

// Vec returns the unit direction of the angle.
func (a Angle32) Vec() (x, y float32) {
	sin, cos := math32.Sincos(float32(a))
	return cos, sin
}

// Diff returns the signed shortest difference a - other, in [-Pi, Pi).
func (a Angle32) Diff(other Angle32) Angle32 {
	d := a - other
	const mod = Angle32(math32.Pi * 2)

	if d >= mod || d < -mod {
		d = Angle32(math32.Mod(float32(d), float32(mod)))
	}

	if d < Angle32(-math32.Pi) {
		d += mod
	} else if d >= Angle32(math32.Pi) {
		d -= mod
	}
	return d
}

// Lerp rotates a toward other along the shortest arc by factor.
func (a Angle32) Lerp(other Angle32, factor float32) Angle32 {
	return a + other.Diff(a)*Angle32(factor)
}

// ClampMagnitude limits the angle to [-max, max].
func (a Angle32) ClampMagnitude(max Angle32) Angle32 {
	if a < -max {
		return -max
	}
	if a > max {
		return max
	}
	return a
}

func (a Angle32) String() string {
	return fmt.Sprintf("%.01f degrees", float32(a)*180/math32.Pi)
}
