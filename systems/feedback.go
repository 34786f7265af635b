package systems

import (
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterFeedbackHandlers subscribes the feedback dispatcher to collection
// events. Call once per world.
func RegisterFeedbackHandlers(ecs *ecs.ECS) {
	components.CollectedEvent.Subscribe(ecs.World, func(w donburi.World, ev components.CollectedEventData) {
		dispatchCollected(ecs, ev)
	})
}

// UpdateFeedback delivers this step's collection events.
func UpdateFeedback(ecs *ecs.ECS) {
	components.CollectedEvent.ProcessEvents(ecs.World)
}

// dispatchCollected plays the collect cue, bursts particles at the
// collectible and hides it. Each effect is fire-and-forget.
func dispatchCollected(ecs *ecs.ECS, ev components.CollectedEventData) {
	PlaySFX(ecs, cfg.SoundCollect, ev.Position)
	factory.SpawnParticleBurst(ecs, ev.Position, cfg.ParticleCollect)

	if !ecs.World.Valid(ev.Entity) {
		return
	}
	entry := ecs.World.Entry(ev.Entity)
	if entry.HasComponent(components.Visual) {
		components.Visual.Get(entry).Hidden = true
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
}
