// Package gamemath holds the pure geometry shared by the systems. It must stay
// free of ECS and ebiten imports so it can be tested headless.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

var (
	WorldUp      = mgl64.Vec3{0, 1, 0}
	ModelForward = mgl64.Vec3{0, 0, 1}  // player models face +Z
	ViewForward  = mgl64.Vec3{0, 0, -1} // cameras look down -Z
	ViewRight    = mgl64.Vec3{1, 0, 0}
)

// IsFinite2 reports whether both components are neither NaN nor infinite.
func IsFinite2(v mgl64.Vec2) bool {
	return isFinite(v[0]) && isFinite(v[1])
}

// IsFinite3 reports whether all components are neither NaN nor infinite.
func IsFinite3(v mgl64.Vec3) bool {
	return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2])
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsZero2 reports whether v is exactly the zero vector.
func IsZero2(v mgl64.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}

// ClampUnit scales v down to unit length when it is longer than 1.
// Non-finite input yields the zero vector.
func ClampUnit(v mgl64.Vec2) mgl64.Vec2 {
	if !IsFinite2(v) {
		return mgl64.Vec2{}
	}
	l := v.Len()
	if l > 1 {
		return v.Mul(1 / l)
	}
	return v
}

// Planar lifts a 2D ground-plane direction onto world X/Z.
func Planar(d mgl64.Vec2) mgl64.Vec3 {
	return mgl64.Vec3{d[0], 0, d[1]}
}

// YawToward returns the rotation about +Y that turns ModelForward onto the
// planar direction d. The second result is false for a zero direction.
func YawToward(d mgl64.Vec2) (mgl64.Quat, bool) {
	if !IsFinite2(d) || d.Len() < epsilon {
		return mgl64.QuatIdent(), false
	}
	return mgl64.QuatRotate(math.Atan2(d[0], d[1]), WorldUp), true
}

// ClampLength scales v down so its length does not exceed max.
func ClampLength(v mgl64.Vec3, max float64) mgl64.Vec3 {
	l := v.Len()
	if l > max && l > epsilon {
		return v.Mul(max / l)
	}
	return v
}

// Lerp3 linearly interpolates from a to b.
func Lerp3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
