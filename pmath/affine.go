package pmath

import "math"

// Affine is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity affine matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// TransformParams describes a local transform. A zero ScaleX/ScaleY is taken
// literally; use NewTransformParams for unit scale defaults.
type TransformParams struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	SkewX, SkewY   float64
	PivotX, PivotY float64
}

// NewTransformParams returns params at the origin with unit scale.
func NewTransformParams() TransformParams {
	return TransformParams{ScaleX: 1, ScaleY: 1}
}

// Compose builds the matrix for p.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Skew -> Rotate -> Translate(X, Y)
func Compose(p TransformParams) Affine {
	sx := p.ScaleX
	sy := p.ScaleY

	sin, cos := math.Sincos(p.Rotation)

	var tanSkewX, tanSkewY float64
	if p.SkewX != 0 {
		tanSkewX = math.Tan(p.SkewX)
	}
	if p.SkewY != 0 {
		tanSkewY = math.Tan(p.SkewY)
	}

	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	preTx := -p.PivotX*sx - tanSkewX*p.PivotY*sy
	preTy := -tanSkewY*p.PivotX*sx - p.PivotY*sy

	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return Affine{ra, rb, rc, rd, rtx + p.X, rty + p.Y}
}

// Mul returns m * c, i.e. c applied first and then m.
func (m Affine) Mul(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Det returns the determinant of the linear part.
func (m Affine) Det() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Invert returns the inverse of m and true, or Identity and false when m is
// singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.Det()
	if det > -1e-12 && det < 1e-12 {
		return Identity, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// Apply transforms a point.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// ApplyVector transforms a direction, ignoring translation.
func (m Affine) ApplyVector(v Vec2) Vec2 {
	return Vec2{m[0]*v.X + m[2]*v.Y, m[1]*v.X + m[3]*v.Y}
}
