package systems

import (
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates advances state timers and keeps the Idle/Running tag
// components in step with the current state.
func UpdateStates(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer++
		entries = append(entries, e)
	})

	for _, e := range entries {
		syncStateTags(e, components.State.Get(e))
	}
}

func syncStateTags(e *donburi.Entry, state *components.StateData) {
	switch state.CurrentState {
	case cfg.Idle:
		if e.HasComponent(components.Idle) {
			return
		}
		removeAllStateTags(e)
		donburi.Add(e, components.Idle, &components.IdleState{})
	case cfg.Running:
		if e.HasComponent(components.Running) {
			return
		}
		removeAllStateTags(e)
		donburi.Add(e, components.Running, &components.RunningState{})
	default:
		removeAllStateTags(e)
	}
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.RunningState](e, components.Running)
}
