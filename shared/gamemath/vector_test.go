package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClampUnit(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec2
		want mgl64.Vec2
	}{
		{"inside unit circle", mgl64.Vec2{0.3, 0.4}, mgl64.Vec2{0.3, 0.4}},
		{"on unit circle", mgl64.Vec2{1, 0}, mgl64.Vec2{1, 0}},
		{"long", mgl64.Vec2{3, 4}, mgl64.Vec2{0.6, 0.8}},
		{"long negative", mgl64.Vec2{-10, 0}, mgl64.Vec2{-1, 0}},
		{"zero", mgl64.Vec2{}, mgl64.Vec2{}},
		{"nan", mgl64.Vec2{math.NaN(), 1}, mgl64.Vec2{}},
		{"inf", mgl64.Vec2{math.Inf(1), 0}, mgl64.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampUnit(tt.in)
			if !near2(got, tt.want, 1e-12) {
				t.Errorf("ClampUnit(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampUnitPreservesDirection(t *testing.T) {
	for _, v := range []mgl64.Vec2{{2, 2}, {-7, 1}, {0.5, -30}, {1e6, 1e6}, {1.0000001, 0}} {
		got := ClampUnit(v)
		if math.Abs(got.Len()-1) > 1e-9 {
			t.Errorf("ClampUnit(%v) length = %v, want 1", v, got.Len())
		}
		want := v.Normalize()
		if !near2(got, want, 1e-9) {
			t.Errorf("ClampUnit(%v) = %v, want direction %v", v, got, want)
		}
	}
}

func TestYawToward(t *testing.T) {
	tests := []struct {
		dir  mgl64.Vec2
		want mgl64.Vec3
	}{
		{mgl64.Vec2{0, 1}, mgl64.Vec3{0, 0, 1}},
		{mgl64.Vec2{1, 0}, mgl64.Vec3{1, 0, 0}},
		{mgl64.Vec2{-1, 0}, mgl64.Vec3{-1, 0, 0}},
		{mgl64.Vec2{0.5, 0.5}, mgl64.Vec3{math.Sqrt2 / 2, 0, math.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		q, ok := YawToward(tt.dir)
		if !ok {
			t.Fatalf("YawToward(%v) reported zero direction", tt.dir)
		}
		if got := q.Rotate(ModelForward); !near(got, tt.want, 1e-9) {
			t.Errorf("YawToward(%v) faces %v, want %v", tt.dir, got, tt.want)
		}
	}

	if _, ok := YawToward(mgl64.Vec2{}); ok {
		t.Error("YawToward(zero) should report no direction")
	}
}

// near compares vectors with an absolute tolerance.
func near(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func near2(a, b mgl64.Vec2, tol float64) bool {
	return a.Sub(b).Len() <= tol
}
