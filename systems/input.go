package systems

import (
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/shared/gamemath"
	"github.com/automoto/donut-gather/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// SetDirection stores a clamped move direction on input and returns it.
// The stored direction is always finite with length <= 1.
func SetDirection(input *components.InputData, raw mgl64.Vec2) mgl64.Vec2 {
	input.Move.Direction = gamemath.ClampUnit(raw)
	return input.Move.Direction
}

// SetOrbitDirection stores a clamped orbit direction on input and returns
// it. Orbit input is lateral only, so its second component is always zero.
func SetOrbitDirection(input *components.InputData, raw mgl64.Vec2) mgl64.Vec2 {
	d := gamemath.ClampUnit(raw)
	d[1] = 0
	input.Orbit = d
	return d
}

// OnDragBegin starts a movement gesture: the player enters Running.
func OnDragBegin(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	input.Move.Active = true

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	state := components.State.Get(playerEntry)
	SetState(playerEntry, NextState(state.CurrentState, SignalBegin))
}

// OnDrag updates the held move direction and moves the player immediately.
func OnDrag(ecs *ecs.ECS, raw mgl64.Vec2) {
	input := GetOrCreateInput(ecs)
	SetDirection(input, raw)
	if !input.Move.Active {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	UpdatePosition(playerEntry, input.Move, cfg.Player.VelocityScale)
}

// OnDragEnd clears the held move input and returns the player to Idle.
func OnDragEnd(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	input.Move = components.InputSample{}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	state := components.State.Get(playerEntry)
	SetState(playerEntry, NextState(state.CurrentState, SignalStop))
}

// OnOrbit hands a clamped orbit direction to the camera rig.
func OnOrbit(ecs *ecs.ECS, raw mgl64.Vec2) {
	d := SetOrbitDirection(GetOrCreateInput(ecs), raw)
	if rig, ok := cameraRig(ecs); ok {
		rig.OrbitInput = d
	}
}

// OnOrbitEnd zeroes the orbit input.
func OnOrbitEnd(ecs *ecs.ECS) {
	GetOrCreateInput(ecs).Orbit = mgl64.Vec2{}
	if rig, ok := cameraRig(ecs); ok {
		rig.OrbitInput = mgl64.Vec2{}
	}
}

// GetOrCreateInput returns the singleton Input component, creating it if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

func cameraRig(ecs *ecs.ECS) (*components.CameraRigData, bool) {
	entry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.CameraRig.Get(entry), true
}
