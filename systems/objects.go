package systems

import (
	"github.com/automoto/donut-gather/components"
	"github.com/automoto/donut-gather/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every contact object to its entity's transform.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		syncObject(e)
	}
}

func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) || !e.HasComponent(components.Transform) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	x, y := factory.ToSpace(components.Transform.Get(e).Position)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}
