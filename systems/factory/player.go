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

func CreatePlayer(ecs *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
	})
	components.Player.SetValue(player, components.PlayerData{
		BaseAltitude: cfg.Player.BaseAltitude,
		Facing:       mgl64.Vec2{0, 1},
		OnStateEnter: resetDustOnRun,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Visual.SetValue(player, components.VisualData{})

	attachBody(ecs, player, pos, cfg.Player.Radius, cfg.Bodies[cfg.CategoryPlayer], tags.ResolvPlayer)

	return player
}

// resetDustOnRun makes the first dust puff appear as soon as the player
// starts running.
func resetDustOnRun(e *donburi.Entry, from, to cfg.StateID) {
	if to == cfg.Running {
		components.Player.Get(e).DustTimer = 0
	}
}
