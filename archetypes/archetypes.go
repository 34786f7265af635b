package archetypes

import (
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.State,
		components.Body,
		components.Object,
		components.Visual,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Transform,
		components.Body,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Transform,
		components.Body,
		components.Object,
		components.Visual,
		components.Bob,
	)
	Camera = newArchetype(
		tags.Camera,
		components.CameraRig,
		components.Transform,
	)
	Space = newArchetype(
		components.Space,
		components.ContactTracker,
	)
	Registry = newArchetype(
		components.Registry,
	)
	Input = newArchetype(
		components.Input,
	)
	ParticleBurst = newArchetype(
		tags.Effect,
		components.ParticleBurst,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
