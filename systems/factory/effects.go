package factory

import (
	"math"

	"github.com/automoto/donut-gather/archetypes"
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Upward lift of the spread directions per burst kind
var burstLift = map[cfg.ParticleKind]float64{
	cfg.ParticleCollect:  0.8,
	cfg.ParticleWalkDust: 0.2,
}

// SpawnParticleBurst creates a one-shot particle burst at pos. The burst
// removes itself when its tween finishes.
func SpawnParticleBurst(ecs *ecs.ECS, pos mgl64.Vec3, kind cfg.ParticleKind) *donburi.Entry {
	def, ok := cfg.Particle.Kinds[kind]
	if !ok || def.Count <= 0 {
		return nil
	}

	entry := archetypes.ParticleBurst.Spawn(ecs)

	lift := burstLift[kind]
	dirs := make([]mgl64.Vec3, def.Count)
	for i := range dirs {
		a := 2 * math.Pi * float64(i) / float64(def.Count)
		dirs[i] = mgl64.Vec3{math.Cos(a), lift, math.Sin(a)}.Normalize()
	}

	components.ParticleBurst.SetValue(entry, components.ParticleBurstData{
		Kind:       kind,
		Origin:     pos,
		Directions: dirs,
		Tween:      gween.New(0, float32(def.MaxScale), float32(def.Duration), ease.OutQuad),
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		FramesRemaining: -1,
		DestroyOnFinish: true,
	})

	return entry
}
