package systems

import (
	"testing"

	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world with a contact space, ground and the collection
// handlers registered. No player, camera or collectibles are created.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateGround(e, cfg.Player.BaseAltitude)
	RegisterCollisionHandlers(e)
	RegisterFeedbackHandlers(e)
	return e
}

// step runs one frame of gameplay systems in scene order.
func step(e *ecs.ECS) {
	UpdateStates(e)
	UpdatePlayerEffects(e)
	UpdateContacts(e)
	UpdateCollisions(e)
	UpdateFeedback(e)
	UpdateCameraRig(e)
	UpdateEffects(e)
	UpdateAudio(e)
}

type recordedCue struct {
	sound  cfg.SoundID
	volume float64
}

type fakeCuePlayer struct {
	played []recordedCue
}

func (f *fakeCuePlayer) Play(sound cfg.SoundID, _ mgl64.Vec3, volume float64) {
	f.played = append(f.played, recordedCue{sound: sound, volume: volume})
}

// near compares vectors with an absolute tolerance.
func near(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func near2(a, b mgl64.Vec2, tol float64) bool {
	return a.Sub(b).Len() <= tol
}
