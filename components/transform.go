package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world transform.
type TransformData struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

var Transform = donburi.NewComponentType[TransformData]()
