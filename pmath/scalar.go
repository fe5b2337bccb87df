package pmath

import (
	"cmp"
	"math"
)

// Float is satisfied by both float kinds.
type Float interface {
	~float32 | ~float64
}

// Number is satisfied by every built-in integer and float kind.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		Float
}

// DefaultEpsilon is the tolerance used by Approximately callers that have no
// better bound of their own.
const DefaultEpsilon = 1e-6

// Clamp limits v to [lo, hi]. If lo > hi the bounds are swapped.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01[T Float](v T) T {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*Clamp01(t)
}

// LerpUnclamped interpolates between a and b without clamping t.
func LerpUnclamped[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// InverseLerp returns where v lies between a and b as a fraction in [0, 1].
// A degenerate range (a == b) yields 0.
func InverseLerp[T Float](a, b, v T) T {
	if a == b {
		return 0
	}
	return Clamp01((v - a) / (b - a))
}

// Remap maps v from [inMin, inMax] onto [outMin, outMax], clamping to the output range.
func Remap[T Float](v, inMin, inMax, outMin, outMax T) T {
	return Lerp(outMin, outMax, InverseLerp(inMin, inMax, v))
}

// Approximately reports whether a and b differ by at most eps.
func Approximately[T Float](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// Sign returns -1, 0 or 1.
func Sign[T Number](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		// Unsigned kinds never reach here.
		var zero T
		return zero - 1
	}
	return 0
}

// Repeat wraps t into [0, length). length must be positive.
func Repeat(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	r := math.Mod(t, length)
	if r < 0 {
		r += length
	}
	return r
}

// PingPong bounces t back and forth between 0 and length.
func PingPong(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	t = Repeat(t, length*2)
	return length - math.Abs(t-length)
}

// SmoothStep performs Hermite interpolation between a and b.
func SmoothStep(a, b, t float64) float64 {
	t = Clamp01(t)
	t = t * t * (3 - 2*t)
	return a + (b-a)*t
}

// MoveTowards moves current toward target by at most maxDelta without overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, target-current)
}

// RoundToStep rounds v to the nearest multiple of step. A non-positive step
// returns v unchanged.
func RoundToStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
