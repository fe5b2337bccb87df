package prandom

import (
	"math"

	"github.com/pheney/plib/pmath"
)

// Angle returns a random angle in [0, 2π).
func (r *Rand) Angle() float64 {
	return r.r.Float64() * 2 * math.Pi
}

// UnitVec2 returns a random direction of length 1.
func (r *Rand) UnitVec2() pmath.Vec2 {
	return pmath.FromAngle(r.Angle())
}

// UnitVec3 returns a random direction of length 1, uniform over the sphere.
func (r *Rand) UnitVec3() pmath.Vec3 {
	z := r.Float(-1, 1)
	theta := r.Angle()
	s := math.Sqrt(1 - z*z)
	return pmath.Vec3{X: s * math.Cos(theta), Y: s * math.Sin(theta), Z: z}
}

// InsideCircle returns a point uniformly distributed inside a circle of the
// given radius centered on the origin.
func (r *Rand) InsideCircle(radius float64) pmath.Vec2 {
	return r.UnitVec2().Mul(radius * math.Sqrt(r.r.Float64()))
}

// InsideSphere returns a point uniformly distributed inside a sphere of the
// given radius centered on the origin.
func (r *Rand) InsideSphere(radius float64) pmath.Vec3 {
	return r.UnitVec3().Mul(radius * math.Cbrt(r.r.Float64()))
}

// OnRing returns a point uniformly distributed over the annulus between inner
// and outer radii. The radii may be given in either order.
func (r *Rand) OnRing(inner, outer float64) pmath.Vec2 {
	inner, outer = math.Abs(inner), math.Abs(outer)
	if inner > outer {
		inner, outer = outer, inner
	}
	i2 := inner * inner
	d := math.Sqrt(i2 + r.r.Float64()*(outer*outer-i2))
	return r.UnitVec2().Mul(d)
}

// InRect returns a point uniformly distributed inside rect.
func (r *Rand) InRect(rect pmath.Rect) pmath.Vec2 {
	return pmath.Vec2{
		X: rect.X + r.r.Float64()*rect.Width,
		Y: rect.Y + r.r.Float64()*rect.Height,
	}
}
