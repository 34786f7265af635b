package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEventData reports that two bodies started touching during a step
type ContactEventData struct {
	BodyA donburi.Entity
	BodyB donburi.Entity
}

var ContactEvent = events.NewEventType[ContactEventData]()

// CollectedEventData is emitted once per collectible when it is collected
type CollectedEventData struct {
	ID       CollectibleID
	Entity   donburi.Entity
	Position mgl64.Vec3
}

var CollectedEvent = events.NewEventType[CollectedEventData]()
