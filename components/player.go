package components

import (
	cfg "github.com/automoto/donut-gather/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	BaseAltitude float64    // Ground reference height the camera rig follows
	Facing       mgl64.Vec2 // Last non-zero planar movement direction
	DustTimer    int        // Frames until the next walk dust puff

	// OnStateEnter runs after every state change (animation switch hook).
	OnStateEnter func(e *donburi.Entry, from, to cfg.StateID)
}

var Player = donburi.NewComponentType[PlayerData]()
