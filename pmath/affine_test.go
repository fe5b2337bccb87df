package pmath

import (
	"math"
	"testing"
)

func assertMatrix(t *testing.T, name string, got, want Affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- Compose ---

func TestComposeIdentity(t *testing.T) {
	got := Compose(NewTransformParams())
	assertMatrix(t, "identity", got, Identity)
}

func TestComposeTranslation(t *testing.T) {
	p := NewTransformParams()
	p.X, p.Y = 10, 20
	assertMatrix(t, "translation", Compose(p), Affine{1, 0, 0, 1, 10, 20})
}

func TestComposeScale(t *testing.T) {
	p := NewTransformParams()
	p.ScaleX, p.ScaleY = 2, 3
	assertMatrix(t, "scale", Compose(p), Affine{2, 0, 0, 3, 0, 0})
}

func TestComposeRotation90(t *testing.T) {
	p := NewTransformParams()
	p.Rotation = math.Pi / 2
	// cos(90)=0, sin(90)=1 -> a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", Compose(p), Affine{0, 1, -1, 0, 0, 0})
}

func TestComposePivot(t *testing.T) {
	p := NewTransformParams()
	p.X, p.Y = 100, 200
	p.PivotX, p.PivotY = 16, 16
	// T(100,200) * T(-16,-16) = [1,0,0,1, 84, 184]
	assertMatrix(t, "pivot", Compose(p), Affine{1, 0, 0, 1, 84, 184})
}

func TestComposeSkew(t *testing.T) {
	p := NewTransformParams()
	p.SkewX = math.Pi / 4 // tan = 1
	assertMatrix(t, "skew", Compose(p), Affine{1, 0, 1, 1, 0, 0})
}

func TestComposeCombined(t *testing.T) {
	p := TransformParams{X: 50, Y: 100, ScaleX: 2, ScaleY: 2, Rotation: math.Pi / 2}
	assertMatrix(t, "combined", Compose(p), Affine{0, 2, -2, 0, 50, 100})
}

// --- Mul ---

func TestMulIdentity(t *testing.T) {
	m := Affine{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", Identity.Mul(m), m)
	assertMatrix(t, "m*id", m.Mul(Identity), m)
}

func TestMulTranslations(t *testing.T) {
	a := Affine{1, 0, 0, 1, 10, 20}
	b := Affine{1, 0, 0, 1, 5, 3}
	assertMatrix(t, "translations", a.Mul(b), Affine{1, 0, 0, 1, 15, 23})
}

// --- Invert ---

func TestInvert(t *testing.T) {
	m := Affine{2, 0, 0, 3, 10, 20}
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	assertMatrix(t, "m*inv=id", m.Mul(inv), Identity)
}

func TestInvertSingular(t *testing.T) {
	inv, ok := Affine{0, 0, 0, 0, 5, 5}.Invert()
	if ok {
		t.Error("singular matrix reported invertible")
	}
	assertMatrix(t, "fallback", inv, Identity)
}

func TestApplyRoundTrip(t *testing.T) {
	p := TransformParams{X: 7, Y: -3, ScaleX: 2, ScaleY: 0.5, Rotation: 0.3, PivotX: 4, PivotY: 1}
	m := Compose(p)
	inv, _ := m.Invert()

	pt := Vec2{12, -8}
	back := inv.Apply(m.Apply(pt))
	assertVec2(t, "round trip", back, pt)

	// Vectors ignore translation.
	assertVec2(t, "vector", Affine{1, 0, 0, 1, 100, 100}.ApplyVector(Vec2{1, 2}), Vec2{1, 2})
}
