package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a world-space position and orientation.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Forward returns the direction the pose is looking along.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Orientation.Rotate(ViewForward)
}

// Right returns the pose's local +X axis in world space.
func (p Pose) Right() mgl64.Vec3 {
	return p.Orientation.Rotate(ViewRight)
}

// Up returns the pose's local +Y axis in world space.
func (p Pose) Up() mgl64.Vec3 {
	return p.Orientation.Rotate(WorldUp)
}

// LookAtTarget projects a player position onto the point the camera tracks:
// same X/Z, with Y fixed at baseAltitude+height.
func LookAtTarget(playerPos mgl64.Vec3, baseAltitude, height float64) mgl64.Vec3 {
	playerPos[1] = baseAltitude + height
	return playerPos
}

// DistanceConstraint places pos at exactly distance from target along the
// current offset. A position coinciding with the target is pushed out
// along +Z.
func DistanceConstraint(pos, target mgl64.Vec3, distance float64) mgl64.Vec3 {
	offset := pos.Sub(target)
	l := offset.Len()
	if l < epsilon || !IsFinite3(offset) {
		offset, l = ModelForward, 1
	}
	return target.Add(offset.Mul(distance / l))
}

// AltitudeConstraint overrides the world Y coordinate of pos.
func AltitudeConstraint(pos mgl64.Vec3, altitude float64) mgl64.Vec3 {
	pos[1] = altitude
	return pos
}

// AccelerationSmoother limits how fast a followed position may change. It
// keeps the velocity of the previous step and approaches each proposed
// position under a velocity cap, an acceleration cap and a per-step damping,
// braking early enough to arrive without overshoot.
type AccelerationSmoother struct {
	MaxVelocity     float64
	MaxAcceleration float64
	Damping         float64

	Velocity mgl64.Vec3
}

// Apply returns the position between proposed (influence 0) and the smoothed
// position (influence 1).
func (s *AccelerationSmoother) Apply(prev, proposed mgl64.Vec3, influence, dt float64) mgl64.Vec3 {
	if dt <= 0 || !IsFinite3(prev) {
		return proposed
	}
	influence = mgl64.Clamp(influence, 0, 1)

	delta := proposed.Sub(prev)
	if influence == 0 {
		s.Velocity = ClampLength(delta.Mul(1/dt), s.MaxVelocity)
		return proposed
	}

	var desired mgl64.Vec3
	if dist := delta.Len(); dist > epsilon {
		speed := math.Min(dist/dt, math.Sqrt(2*s.MaxAcceleration*dist))
		speed = math.Min(speed, s.MaxVelocity)
		desired = delta.Mul(speed / dist)
	}

	dv := ClampLength(desired.Sub(s.Velocity), s.MaxAcceleration*dt)
	s.Velocity = ClampLength(s.Velocity.Add(dv).Mul(1-s.Damping), s.MaxVelocity)

	smoothed := prev.Add(s.Velocity.Mul(dt))
	return Lerp3(proposed, smoothed, influence)
}

// Reset drops the carried velocity.
func (s *AccelerationSmoother) Reset() {
	s.Velocity = mgl64.Vec3{}
}

// OrbitConstraint rotates the pose about target by a single combined
// rotation: yaw about up by input.x*sensitivity, then pitch about the pose's
// own right axis by input.y*sensitivity. Zero or non-finite input returns
// the pose unchanged.
func OrbitConstraint(p Pose, target, up mgl64.Vec3, input mgl64.Vec2, sensitivity float64) Pose {
	if !IsFinite2(input) || IsZero2(input) {
		return p
	}
	if l := up.Len(); l < epsilon || !IsFinite3(up) {
		up = WorldUp
	} else {
		up = up.Mul(1 / l)
	}

	q := mgl64.QuatRotate(sensitivity*input[0], up).Mul(
		mgl64.QuatRotate(sensitivity*input[1], p.Right().Normalize()),
	)

	offset := p.Position.Sub(target)
	return Pose{
		Position:    target.Add(q.Rotate(offset)),
		Orientation: q.Mul(p.Orientation).Normalize(),
	}
}

// LookRotation returns the roll-free orientation whose forward axis points
// along forward. When forward is parallel to up, the first usable axis among
// the fallbacks is used as up instead. ok is false for a zero forward.
func LookRotation(forward, up mgl64.Vec3, fallbacks ...mgl64.Vec3) (mgl64.Quat, bool) {
	if forward.Len() < epsilon || !IsFinite3(forward) {
		return mgl64.QuatIdent(), false
	}
	f := forward.Normalize()

	var right mgl64.Vec3
	for _, candidate := range append([]mgl64.Vec3{up}, fallbacks...) {
		right = f.Cross(candidate)
		if right.Len() > 1e-6 {
			break
		}
	}
	if right.Len() <= 1e-6 {
		// Last resort: any axis perpendicular to f.
		right = f.Cross(mgl64.Vec3{1, 0, 0})
		if right.Len() <= 1e-6 {
			right = f.Cross(mgl64.Vec3{0, 0, 1})
		}
	}
	right = right.Normalize()
	u := right.Cross(f)

	m := mgl64.Mat4FromCols(
		right.Vec4(0),
		u.Vec4(0),
		f.Mul(-1).Vec4(0),
		mgl64.Vec4{0, 0, 0, 1},
	)
	return mgl64.Mat4ToQuat(m).Normalize(), true
}

// LookAtConstraint eases the pose's orientation toward facing target,
// keeping world up as the reference axis. Pitch may reach straight up or down:
// the pose's current up and forward axes stand in when the view is vertical.
func LookAtConstraint(p Pose, target mgl64.Vec3, influence float64) Pose {
	desired, ok := LookRotation(target.Sub(p.Position), WorldUp, p.Up(), p.Forward())
	if !ok {
		return p
	}
	p.Orientation = Slerp(p.Orientation, desired, mgl64.Clamp(influence, 0, 1))
	return p
}

// Slerp interpolates along the shortest arc between two orientations.
func Slerp(from, to mgl64.Quat, t float64) mgl64.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, t).Normalize()
}
