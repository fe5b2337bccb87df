package pmath

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector. Y is up for the ballistics helpers.
type Vec3 struct {
	X, Y, Z float64
}

// --- Vec2 ---

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }
func (v Vec2) LenSq() float64       { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }

// Normalize returns the unit vector in v's direction, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp interpolates toward o with t clamped to [0, 1].
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// Angle returns the heading of v in radians, measured from +X.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates v counter-clockwise by rad radians.
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Project returns the projection of v onto o.
func (v Vec2) Project(o Vec2) Vec2 {
	d := o.LenSq()
	if d == 0 {
		return Vec2{}
	}
	return o.Mul(v.Dot(o) / d)
}

// Reflect reflects v about the line with the given normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	n := normal.Normalize()
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// ClampLen shortens v to at most maxLen.
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Mul(maxLen / l)
}

// FromAngle returns the unit vector pointing at rad radians.
func FromAngle(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{cos, sin}
}

// --- Vec3 ---

func (v Vec3) Add(o Vec3) Vec3     { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3     { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3  { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64  { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) LenSq() float64      { return v.Dot(v) }
func (v Vec3) Len() float64        { return math.Sqrt(v.LenSq()) }
func (v Vec3) Dist(o Vec3) float64 { return v.Sub(o).Len() }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns the unit vector in v's direction, or the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// Lerp interpolates toward o with t clamped to [0, 1].
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t)}
}

// Angle returns the unsigned angle between v and o in radians.
func (v Vec3) Angle(o Vec3) float64 {
	d := math.Sqrt(v.LenSq() * o.LenSq())
	if d == 0 {
		return 0
	}
	return math.Acos(Clamp(v.Dot(o)/d, -1, 1))
}

// Project returns the projection of v onto o.
func (v Vec3) Project(o Vec3) Vec3 {
	d := o.LenSq()
	if d == 0 {
		return Vec3{}
	}
	return o.Mul(v.Dot(o) / d)
}

// Reflect reflects v off a plane with the given normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	n := normal.Normalize()
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// ClampLen shortens v to at most maxLen.
func (v Vec3) ClampLen(maxLen float64) Vec3 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Mul(maxLen / l)
}

// XZ drops the vertical component.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}
