package systems

import (
	"math"

	"github.com/automoto/donut-gather/components"
	"github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/shared/gamemath"
	"github.com/automoto/donut-gather/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCameraRig moves the follow camera. Without a player the camera keeps
// its last transform.
func UpdateCameraRig(e *ecs.ECS) {
	cameraEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, hold the camera where it is
	}

	rig := components.CameraRig.Get(cameraEntry)
	transform := components.Transform.Get(cameraEntry)
	playerTransform := components.Transform.Get(playerEntry)
	baseAltitude := components.Player.Get(playerEntry).BaseAltitude

	pose := StepCameraRig(rig, gamemath.Pose{
		Position:    transform.Position,
		Orientation: transform.Orientation,
	}, playerTransform, baseAltitude, 1/float64(config.C.TPS))

	transform.Position = pose.Position
	transform.Orientation = pose.Orientation
}

// StepCameraRig evaluates one frame of the rig. The constraints run in a
// fixed order: distance, altitude, acceleration smoothing, orbit, look-at.
func StepCameraRig(rig *components.CameraRigData, current gamemath.Pose, player *components.TransformData, baseAltitude, dt float64) gamemath.Pose {
	rig.LookAtTarget = gamemath.LookAtTarget(player.Position, baseAltitude, config.Camera.LookAtHeight)
	target := rig.LookAtTarget

	// Orbiting hands the camera straight to the user; smoothing fades back
	// in once orbit input stops.
	if gamemath.IsFinite2(rig.OrbitInput) && !gamemath.IsZero2(rig.OrbitInput) {
		rig.AccelerationInfluence = 0
	} else {
		rig.AccelerationInfluence = math.Min(1, rig.AccelerationInfluence+config.Camera.InfluenceRampStep)
	}

	pos := gamemath.DistanceConstraint(current.Position, target, rig.Distance)
	pos = gamemath.AltitudeConstraint(pos, baseAltitude+rig.DesiredAltitude)
	pos = rig.Smoother.Apply(current.Position, pos, rig.AccelerationInfluence, dt)

	pose := gamemath.Pose{Position: pos, Orientation: current.Orientation}
	up := player.Orientation.Rotate(gamemath.WorldUp)
	pose = gamemath.OrbitConstraint(pose, target, up, rig.OrbitInput, config.Camera.OrbitSensitivity)
	return gamemath.LookAtConstraint(pose, target, config.Camera.LookAtInfluence)
}

// CameraView returns the camera pose for rendering.
func CameraView(w donburi.World) (gamemath.Pose, bool) {
	cameraEntry, ok := tags.Camera.First(w)
	if !ok {
		return gamemath.Pose{}, false
	}
	t := components.Transform.Get(cameraEntry)
	return gamemath.Pose{Position: t.Position, Orientation: t.Orientation}, true
}
