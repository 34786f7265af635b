package systems

import (
	"math"
	"testing"

	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/shared/gamemath"
	"github.com/automoto/donut-gather/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func TestNextState(t *testing.T) {
	tests := []struct {
		current cfg.StateID
		signal  MotionSignal
		want    cfg.StateID
	}{
		{cfg.Idle, SignalBegin, cfg.Running},
		{cfg.Idle, SignalStop, cfg.Idle},
		{cfg.Running, SignalStop, cfg.Idle},
		{cfg.Running, SignalBegin, cfg.Running},
		{cfg.StateNone, SignalBegin, cfg.StateNone},
		{cfg.StateNone, SignalStop, cfg.StateNone},
	}
	for _, tt := range tests {
		if got := NextState(tt.current, tt.signal); got != tt.want {
			t.Errorf("NextState(%v, %v) = %v, want %v", tt.current, tt.signal, got, tt.want)
		}
	}
}

func TestSetStateRunsHookOnChange(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, mgl64.Vec3{})

	type change struct{ from, to cfg.StateID }
	var changes []change
	components.Player.Get(player).OnStateEnter = func(_ *donburi.Entry, from, to cfg.StateID) {
		changes = append(changes, change{from, to})
	}

	SetState(player, cfg.Running)
	SetState(player, cfg.Running)
	SetState(player, cfg.StateNone)
	SetState(player, cfg.Idle)

	want := []change{{cfg.Idle, cfg.Running}, {cfg.Running, cfg.Idle}}
	if len(changes) != len(want) {
		t.Fatalf("hook ran %d times, want %d: %v", len(changes), len(want), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, changes[i], want[i])
		}
	}

	state := components.State.Get(player)
	if state.CurrentState != cfg.Idle || state.PreviousState != cfg.Running {
		t.Errorf("state = %+v", *state)
	}
}

func TestUpdatePosition(t *testing.T) {
	tests := []struct {
		name   string
		sample components.InputSample
		scale  float64
		want   mgl64.Vec3
	}{
		{"inactive still moves", components.InputSample{Direction: mgl64.Vec2{1, 0}}, 1, mgl64.Vec3{1, 0, 0}},
		{"zero direction", components.InputSample{Active: true}, 1, mgl64.Vec3{}},
		{"x maps to world x", components.InputSample{Direction: mgl64.Vec2{1, 0}, Active: true}, 0.5, mgl64.Vec3{0.5, 0, 0}},
		{"y maps to world z", components.InputSample{Direction: mgl64.Vec2{0, -1}, Active: true}, 2, mgl64.Vec3{0, 0, -2}},
		{"clamped", components.InputSample{Direction: mgl64.Vec2{0, 10}, Active: true}, 1, mgl64.Vec3{0, 0, 1}},
		{"negative scale", components.InputSample{Direction: mgl64.Vec2{1, 0}, Active: true}, -1, mgl64.Vec3{}},
		{"NaN scale", components.InputSample{Direction: mgl64.Vec2{1, 0}, Active: true}, math.NaN(), mgl64.Vec3{}},
		{"Inf scale", components.InputSample{Direction: mgl64.Vec2{1, 0}, Active: true}, math.Inf(1), mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			player := factory.CreatePlayer(e, mgl64.Vec3{})
			UpdatePosition(player, tt.sample, tt.scale)
			if got := PlayerPosition(player); !near(got, tt.want, 1e-12) {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdatePositionFacesMovement(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, mgl64.Vec3{})

	UpdatePosition(player, components.InputSample{Direction: mgl64.Vec2{1, 0}, Active: true}, 1)

	forward := components.Transform.Get(player).Orientation.Rotate(gamemath.ModelForward)
	if !near(forward, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("forward = %v, want +X", forward)
	}
	if facing := components.Player.Get(player).Facing; math.Abs(facing[0]-1) > 1e-12 {
		t.Errorf("facing = %v", facing)
	}
}

func TestUpdatePositionInactiveKeepsHeading(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, mgl64.Vec3{})
	before := components.Transform.Get(player).Orientation
	facing := components.Player.Get(player).Facing

	UpdatePosition(player, components.InputSample{Direction: mgl64.Vec2{0, 1}}, 1)

	if got := PlayerPosition(player); !near(got, mgl64.Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("position = %v, want (0, 0, 1)", got)
	}
	if got := components.Transform.Get(player).Orientation; got != before {
		t.Errorf("orientation = %v, want unchanged %v", got, before)
	}
	if got := components.Player.Get(player).Facing; got != facing {
		t.Errorf("facing = %v, want unchanged %v", got, facing)
	}
}

func TestUpdateStatesSyncsTags(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, mgl64.Vec3{})

	UpdateStates(e)
	if !player.HasComponent(components.Idle) || player.HasComponent(components.Running) {
		t.Fatal("idle player should carry only the Idle tag")
	}

	SetState(player, cfg.Running)
	UpdateStates(e)
	if !player.HasComponent(components.Running) || player.HasComponent(components.Idle) {
		t.Fatal("running player should carry only the Running tag")
	}
	if got := components.State.Get(player).StateTimer; got != 1 {
		t.Errorf("state timer = %d, want 1", got)
	}
}
