package factory

import (
	"github.com/automoto/donut-gather/archetypes"
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates the ground plane at the given altitude. Its body
// covers the whole contact space.
func CreateGround(ecs *ecs.ECS, altitude float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	pos := mgl64.Vec3{0, altitude, 0}
	components.Transform.SetValue(ground, components.TransformData{
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
	})
	attachBody(ecs, ground, pos, cfg.Physics.HalfExtent, cfg.Bodies[cfg.CategoryGround], tags.ResolvGround)

	return ground
}
