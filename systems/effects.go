package systems

import (
	"github.com/automoto/donut-gather/components"
	"github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances visual effects (bob, particle bursts, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(1 / float64(config.C.TPS))
	updateBobs(ecs, dt)
	updateParticleBursts(ecs, dt)
	updateAutoDestroy(ecs)
}

// UpdatePlayerEffects puffs walk dust under a running player
func UpdatePlayerEffects(ecs *ecs.ECS) {
	var puffs []mgl64.Vec3

	components.Running.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Player) {
			return
		}
		player := components.Player.Get(e)
		if player.DustTimer > 0 {
			player.DustTimer--
			return
		}
		player.DustTimer = config.Player.DustInterval
		puffs = append(puffs, components.Transform.Get(e).Position)
	})

	// The world must not change while the query runs.
	for _, pos := range puffs {
		factory.SpawnParticleBurst(ecs, pos, config.ParticleWalkDust)
		PlaySFX(ecs, config.SoundStep, pos)
	}
}

// updateBobs ping-pongs each visible bob tween
func updateBobs(ecs *ecs.ECS, dt float32) {
	components.Bob.Each(ecs.World, func(e *donburi.Entry) {
		bob := components.Bob.Get(e)
		if bob.Tween == nil {
			return
		}
		visual := components.Visual.Get(e)
		if visual.Hidden {
			return
		}

		offset, finished := bob.Tween.Update(dt)
		visual.OffsetY = float64(offset)
		if finished {
			bob.From, bob.To = bob.To, bob.From
			bob.Tween = gween.New(bob.From, bob.To, bob.Duration, ease.InOutSine)
		}
	})
}

// updateParticleBursts grows each burst's spread radius along its tween
func updateParticleBursts(ecs *ecs.ECS, dt float32) {
	components.ParticleBurst.Each(ecs.World, func(e *donburi.Entry) {
		burst := components.ParticleBurst.Get(e)
		if burst.Finished || burst.Tween == nil {
			return
		}
		scale, finished := burst.Tween.Update(dt)
		burst.Scale = float64(scale)
		burst.Finished = finished
	})
}

// updateAutoDestroy removes entities whose lifetime ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)

		if ad.DestroyOnFinish && e.HasComponent(components.ParticleBurst) {
			if components.ParticleBurst.Get(e).Finished {
				toDestroy = append(toDestroy, e)
				return
			}
		}

		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}
