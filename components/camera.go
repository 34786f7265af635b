package components

import (
	"github.com/automoto/donut-gather/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraRigData is the follow-camera state. Distance and DesiredAltitude are
// fixed when the rig is created.
type CameraRigData struct {
	LookAtTarget          mgl64.Vec3 // derived each frame from the player
	OrbitInput            mgl64.Vec2
	AccelerationInfluence float64
	Distance              float64
	DesiredAltitude       float64
	Smoother              gamemath.AccelerationSmoother
}

var CameraRig = donburi.NewComponentType[CameraRigData]()
