package systems

import (
	"testing"

	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

func TestPauseSkipsGameplay(t *testing.T) {
	e := newTestECS(t)
	var ran int
	counted := WithGameplayChecks(func(*ecs.ECS) { ran++ })

	counted(e)
	TogglePause(e)
	counted(e)
	counted(e)
	TogglePause(e)
	counted(e)

	if ran != 2 {
		t.Errorf("system ran %d times, want 2", ran)
	}
}

func TestPauseReleasesGestures(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, mgl64.Vec3{})
	factory.CreateCameraRig(e, mgl64.Vec3{}, cfg.Camera.InitialOffset)

	OnDragBegin(e)
	OnOrbit(e, mgl64.Vec2{1, 0})
	TogglePause(e)

	if !IsPaused(e) {
		t.Fatal("not paused")
	}
	if got := components.State.Get(player).CurrentState; got != cfg.Idle {
		t.Errorf("state while paused = %v, want idle", got)
	}
	if input := GetOrCreateInput(e); input.Move.Active || input.Orbit != (mgl64.Vec2{}) {
		t.Errorf("input still held while paused: %+v", *input)
	}
}
