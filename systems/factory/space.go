package factory

import (
	"github.com/automoto/donut-gather/archetypes"
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the contact space covering the configured X/Z area.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	size := int(2 * cfg.Physics.HalfExtent * cfg.Physics.SpaceScale)
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(size, size, cfg.Physics.CellSize, cfg.Physics.CellSize)
	components.Space.Set(space, spaceData)
	components.ContactTracker.SetValue(space, components.ContactTrackerData{
		Touching: map[components.ContactPair]struct{}{},
	})
	return space
}

// ToSpace maps a world position onto the contact space. World X becomes
// space X and world Z becomes space Y; the space origin is the area's corner.
func ToSpace(pos mgl64.Vec3) (x, y float64) {
	return (pos[0] + cfg.Physics.HalfExtent) * cfg.Physics.SpaceScale,
		(pos[2] + cfg.Physics.HalfExtent) * cfg.Physics.SpaceScale
}

// attachBody gives entry a square contact object of the given world-space
// radius centred on pos and adds it to the space if there is one.
func attachBody(ecs *ecs.ECS, entry *donburi.Entry, pos mgl64.Vec3, radius float64, masks cfg.BodyMasks, tag string) *resolv.Object {
	size := 2 * radius * cfg.Physics.SpaceScale
	x, y := ToSpace(pos)

	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Body.SetValue(entry, components.BodyData{BodyMasks: masks, Radius: radius})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
