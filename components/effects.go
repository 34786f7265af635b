package components

import (
	cfg "github.com/automoto/donut-gather/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// VisualData is what the render collaborator needs beyond the transform
type VisualData struct {
	Hidden  bool
	OffsetY float64 // animated offset added to the transform (bob)
}

var Visual = donburi.NewComponentType[VisualData]()

// BobData drives a back-and-forth vertical offset on a visual
type BobData struct {
	Tween    *gween.Tween
	From, To float32
	Duration float32 // seconds per half cycle
}

var Bob = donburi.NewComponentType[BobData]()

// ParticleBurstData is a short-lived particle effect anchored in the world
type ParticleBurstData struct {
	Kind       cfg.ParticleKind
	Origin     mgl64.Vec3
	Directions []mgl64.Vec3 // unit spread direction per particle
	Tween      *gween.Tween // 0 -> MaxScale over the burst lifetime
	Scale      float64      // current spread radius
	Finished   bool
}

var ParticleBurst = donburi.NewComponentType[ParticleBurstData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int  // frames until destruction (-1 = until the burst finishes)
	DestroyOnFinish bool // destroy when the particle burst tween completes
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
