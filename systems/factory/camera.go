package factory

import (
	"math"

	"github.com/automoto/donut-gather/archetypes"
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCameraRig places the follow camera at focus+offset, looking at the
// focus. The rig keeps |offset| as its follow distance and |offset.y| as its
// height above the player's base altitude.
func CreateCameraRig(ecs *ecs.ECS, focus, offset mgl64.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	pos := focus.Add(offset)
	target := gamemath.LookAtTarget(focus, cfg.Player.BaseAltitude, cfg.Camera.LookAtHeight)
	orientation, ok := gamemath.LookRotation(target.Sub(pos), gamemath.WorldUp)
	if !ok {
		orientation = mgl64.QuatIdent()
	}

	components.Transform.SetValue(camera, components.TransformData{
		Position:    pos,
		Orientation: orientation,
	})
	components.CameraRig.SetValue(camera, components.CameraRigData{
		LookAtTarget:    target,
		Distance:        offset.Len(),
		DesiredAltitude: math.Abs(offset[1]),
		Smoother: gamemath.AccelerationSmoother{
			MaxVelocity:     cfg.Camera.MaxLinearVelocity,
			MaxAcceleration: cfg.Camera.MaxLinearAcceleration,
			Damping:         cfg.Camera.Damping,
		},
	})

	return camera
}
