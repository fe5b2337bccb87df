package pmath

import "math"

const twoPi = 2 * math.Pi

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle wraps an angle to [-Pi, Pi).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a - math.Pi
}

// NormalizeHeading wraps a heading to [0, 2*Pi).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, twoPi)
	if h < 0 {
		h += twoPi
	}
	return h
}

// DeltaAngle returns the shortest signed rotation from a to b, in [-Pi, Pi).
func DeltaAngle(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// LerpAngle interpolates from a to b along the shortest arc. t is clamped.
func LerpAngle(a, b, t float64) float64 {
	return a + DeltaAngle(a, b)*Clamp01(t)
}

// MoveTowardsAngle rotates current toward target by at most maxDelta radians.
func MoveTowardsAngle(current, target, maxDelta float64) float64 {
	d := DeltaAngle(current, target)
	if math.Abs(d) <= maxDelta {
		return current + d
	}
	return current + math.Copysign(maxDelta, d)
}
