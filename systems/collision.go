package systems

import (
	"log"

	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterCollisionHandlers subscribes the collection broker to contact
// events. Call once per world.
func RegisterCollisionHandlers(ecs *ecs.ECS) {
	components.ContactEvent.Subscribe(ecs.World, HandleContact)
}

// UpdateCollisions delivers the contacts reported this step.
func UpdateCollisions(ecs *ecs.ECS) {
	components.ContactEvent.ProcessEvents(ecs.World)
}

// HandleContact turns a player/collectible contact into exactly one
// CollectedEvent per collectible. Contacts involving anything else, or
// collectibles already collected, are ignored.
func HandleContact(w donburi.World, ev components.ContactEventData) {
	var player, collectible *donburi.Entry
	for _, entity := range []donburi.Entity{ev.BodyA, ev.BodyB} {
		entry, category := classify(w, entity)
		switch category {
		case cfg.CategoryPlayer:
			player = entry
		case cfg.CategoryCollectible:
			collectible = entry
		}
	}
	if player == nil || collectible == nil {
		return
	}

	data := components.Collectible.Get(collectible)
	if !MarkCollected(w, data.ID) {
		return
	}

	pos := components.Transform.Get(collectible).Position
	if cfg.Debug.LogEvents {
		collected, total := CollectedCount(w)
		log.Printf("collected #%d at (%.1f, %.1f, %.1f) [%d/%d]", data.ID, pos[0], pos[1], pos[2], collected, total)
	}
	components.CollectedEvent.Publish(w, components.CollectedEventData{
		ID:       data.ID,
		Entity:   collectible.Entity(),
		Position: pos,
	})
}

// classify returns the entry behind a body and its category. Bodies that are
// gone or unregistered classify as CategoryNone.
func classify(w donburi.World, entity donburi.Entity) (*donburi.Entry, cfg.EntityCategory) {
	if !w.Valid(entity) {
		return nil, cfg.CategoryNone
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(components.Body) {
		return nil, cfg.CategoryNone
	}
	category := components.Body.Get(entry).Category
	if category == cfg.CategoryCollectible && !entry.HasComponent(components.Collectible) {
		return nil, cfg.CategoryNone
	}
	return entry, category
}
