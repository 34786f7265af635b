package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestProjectCentersTarget(t *testing.T) {
	pos := mgl64.Vec3{0, 4, 8}
	target := mgl64.Vec3{0, 0.5, 0}
	q, ok := LookRotation(target.Sub(pos), WorldUp)
	if !ok {
		t.Fatal("LookRotation failed")
	}
	proj := NewProjection(Pose{Position: pos, Orientation: q}, 640, 360, 60, 0.1, 200)

	x, y, depth, ok := proj.Project(target)
	if !ok {
		t.Fatal("target not visible")
	}
	if math.Abs(x-320) > 1e-6 || math.Abs(y-180) > 1e-6 {
		t.Errorf("target at (%v, %v), want screen centre", x, y)
	}
	if want := target.Sub(pos).Len(); math.Abs(depth-want) > 1e-9 {
		t.Errorf("depth = %v, want %v", depth, want)
	}
}

func TestProjectAxes(t *testing.T) {
	// Identity pose looks down -Z with +X to the right and +Y up.
	proj := NewProjection(Pose{Orientation: mgl64.QuatIdent()}, 200, 100, 90, 0.1, 100)

	tests := []struct {
		name  string
		world mgl64.Vec3
		check func(x, y float64) bool
	}{
		{"right", mgl64.Vec3{1, 0, -5}, func(x, y float64) bool { return x > 100 && math.Abs(y-50) < 1e-9 }},
		{"up", mgl64.Vec3{0, 1, -5}, func(x, y float64) bool { return y < 50 && math.Abs(x-100) < 1e-9 }},
	}
	for _, tt := range tests {
		x, y, _, ok := proj.Project(tt.world)
		if !ok || !tt.check(x, y) {
			t.Errorf("%s: projected to (%v, %v, ok=%v)", tt.name, x, y, ok)
		}
	}

	if _, _, _, ok := proj.Project(mgl64.Vec3{0, 0, 5}); ok {
		t.Error("point behind the camera reported visible")
	}
	if _, _, _, ok := proj.Project(mgl64.Vec3{0, 0, -500}); ok {
		t.Error("point beyond the far plane reported visible")
	}
}

func TestProjectionScale(t *testing.T) {
	proj := NewProjection(Pose{Orientation: mgl64.QuatIdent()}, 200, 100, 90, 0.1, 100)
	// fov 90 => focal = 50 px at depth 1
	if got := proj.Scale(1, 2); math.Abs(got-25) > 1e-9 {
		t.Errorf("Scale(1, 2) = %v, want 25", got)
	}
	if got := proj.Scale(1, 0); got != 0 {
		t.Errorf("Scale at zero depth = %v, want 0", got)
	}
}
