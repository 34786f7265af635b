package systems

import (
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts is the physics step: it finds body pairs whose footprints
// overlap and publishes a ContactEvent for each pair that started touching
// since the previous step. Pairs stay silent while they remain in contact.
func UpdateContacts(ecs *ecs.ECS) {
	UpdateObjects(ecs)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	tracker := components.ContactTracker.Get(spaceEntry)
	if tracker.Touching == nil {
		tracker.Touching = map[components.ContactPair]struct{}{}
	}

	current := make(map[components.ContactPair]struct{}, len(tracker.Touching))

	for e := range components.Body.Iter(ecs.World) {
		body := components.Body.Get(e)
		if body.ContactTestMask == cfg.CategoryNone || !e.HasComponent(components.Object) {
			continue
		}
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			continue
		}

		check := obj.Check(0, 0, resolvTags(body.ContactTestMask)...)
		if check == nil {
			continue
		}

		for _, o := range check.Objects {
			other, ok := o.Data.(*donburi.Entry)
			if !ok || other.Entity() == e.Entity() || !other.Valid() || !other.HasComponent(components.Body) {
				continue
			}
			otherBody := components.Body.Get(other)
			if !components.Contacts(body, otherBody) || !overlapping(e, body, other, otherBody) {
				continue
			}

			pair := components.ContactPair{A: e.Entity(), B: other.Entity()}
			if _, seen := current[components.ContactPair{A: pair.B, B: pair.A}]; seen {
				continue
			}
			current[pair] = struct{}{}

			_, was := tracker.Touching[pair]
			_, wasReversed := tracker.Touching[components.ContactPair{A: pair.B, B: pair.A}]
			if !was && !wasReversed {
				ReportContact(ecs.World, pair.A, pair.B)
			}
		}
	}

	tracker.Touching = current
}

// ReportContact publishes a contact between two bodies. The physics step
// calls it for every begun contact; other contact sources may call it too.
func ReportContact(w donburi.World, a, b donburi.Entity) {
	components.ContactEvent.Publish(w, components.ContactEventData{BodyA: a, BodyB: b})
}

// overlapping is the narrow phase: footprints are discs on the X/Z plane.
func overlapping(a *donburi.Entry, ab *components.BodyData, b *donburi.Entry, bb *components.BodyData) bool {
	pa := components.Transform.Get(a).Position
	pb := components.Transform.Get(b).Position
	dx, dz := pa[0]-pb[0], pa[2]-pb[2]
	r := ab.Radius + bb.Radius
	return dx*dx+dz*dz <= r*r
}

func resolvTags(mask cfg.EntityCategory) []string {
	var out []string
	if mask.Has(cfg.CategoryPlayer) {
		out = append(out, tags.ResolvPlayer)
	}
	if mask.Has(cfg.CategoryGround) {
		out = append(out, tags.ResolvGround)
	}
	if mask.Has(cfg.CategoryCollectible) {
		out = append(out, tags.ResolvCollectible)
	}
	return out
}
