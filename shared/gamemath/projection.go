package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection maps world points to screen pixels for one camera pose.
type Projection struct {
	viewProj      mgl64.Mat4
	width, height float64
	focal         float64 // pixels per world unit at depth 1
}

// NewProjection builds a perspective projection. fovY is in degrees.
func NewProjection(p Pose, width, height int, fovY, zNear, zFar float64) Projection {
	w, h := float64(width), float64(height)
	fov := mgl64.DegToRad(fovY)

	proj := mgl64.Perspective(fov, w/h, zNear, zFar)
	view := p.Orientation.Conjugate().Normalize().Mat4().Mul4(
		mgl64.Translate3D(-p.Position[0], -p.Position[1], -p.Position[2]),
	)

	return Projection{
		viewProj: proj.Mul4(view),
		width:    w,
		height:   h,
		focal:    (h / 2) / math.Tan(fov/2),
	}
}

// Project returns the screen position of world and its view depth. ok is
// false for points outside the near/far range.
func (p Projection) Project(world mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	depth = clip[3]
	if depth <= 0 {
		return 0, 0, depth, false
	}
	ndc := clip.Vec3().Mul(1 / depth)
	if ndc[2] < -1 || ndc[2] > 1 {
		return 0, 0, depth, false
	}
	x = (ndc[0] + 1) / 2 * p.width
	y = (1 - ndc[1]) / 2 * p.height
	return x, y, depth, true
}

// Scale converts a world length at the given depth into pixels.
func (p Projection) Scale(length, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return length * p.focal / depth
}
