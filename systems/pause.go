package systems

import (
	"github.com/automoto/donut-gather/components"
	"github.com/yohamta/donburi/ecs"
)

// TogglePause flips the pause state. Held gestures are released so nothing
// keeps moving underneath the pause overlay.
func TogglePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
	if pause.IsPaused {
		OnDragEnd(ecs)
		OnOrbitEnd(ecs)
	}
}

// IsPaused reports whether gameplay is paused
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if IsPaused(ecs) {
			return
		}
		system(ecs)
	}
}

// WithGameplayChecks wraps a gameplay system with all the checks it needs.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
