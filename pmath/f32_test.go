package pmath

import (
	"math"
	"testing"
)

func TestFastSinCos(t *testing.T) {
	for x := -10.0; x <= 10.0; x += 0.37 {
		got := float64(FastSin(float32(x)))
		if math.Abs(got-math.Sin(x)) > 0.002 {
			t.Errorf("FastSin(%v) = %v, want ~%v", x, got, math.Sin(x))
		}
		got = float64(FastCos(float32(x)))
		if math.Abs(got-math.Cos(x)) > 0.002 {
			t.Errorf("FastCos(%v) = %v, want ~%v", x, got, math.Cos(x))
		}
	}
}

func TestFastSqrt(t *testing.T) {
	for _, x := range []float32{0.01, 1, 2, 100, 12345} {
		got := float64(FastSqrt(x))
		want := math.Sqrt(float64(x))
		if math.Abs(got-want)/want > 0.002 {
			t.Errorf("FastSqrt(%v) = %v, want ~%v", x, got, want)
		}
	}
	if FastSqrt(-1) != 0 {
		t.Error("FastSqrt of negative should be 0")
	}
}

func TestFloat32Helpers(t *testing.T) {
	if Clamp32(5, 0, 1) != 1 {
		t.Error("Clamp32 upper")
	}
	if Lerp32(0, 10, 1.5) != 15 {
		t.Error("Lerp32 is unclamped")
	}
	if got := NormalizeAngle32(3 * math.Pi / 2); math.Abs(float64(got)+math.Pi/2) > 1e-5 {
		t.Errorf("NormalizeAngle32 = %v, want -pi/2", got)
	}
}

func TestAngle32Diff(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{math.Pi / 2, 0, math.Pi / 2},
		{-math.Pi / 2, 0, -math.Pi / 2},
		{0.1, 2*math.Pi - 0.1, 0.2},
		{2*math.Pi - 0.1, 0.1, -0.2},
	}
	for _, tt := range tests {
		got := Angle32(tt.a).Diff(Angle32(tt.b))
		if math.Abs(float64(got)-tt.want) > 1e-4 {
			t.Errorf("Angle32(%v).Diff(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAngle32LerpAndVec(t *testing.T) {
	got := Angle32(0.1).Lerp(Angle32(-0.1), 0.5)
	if math.Abs(float64(got)) > 1e-6 {
		t.Errorf("Lerp = %v, want 0", got)
	}
	x, y := Angle32(math.Pi / 2).Vec()
	if math.Abs(float64(x)) > 1e-6 || math.Abs(float64(y)-1) > 1e-6 {
		t.Errorf("Vec = (%v, %v), want (0, 1)", x, y)
	}
	if Angle32(2).ClampMagnitude(1) != 1 || Angle32(-2).ClampMagnitude(1) != -1 {
		t.Error("ClampMagnitude")
	}
	if s := Angle32(math.Pi).String(); s != "180.0 degrees" {
		t.Errorf("String = %q", s)
	}
}
