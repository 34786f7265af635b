package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputSample is one clamped analog reading.
type InputSample struct {
	Direction mgl64.Vec2
	Active    bool
}

// InputData holds the held input of both analog channels. Move maps onto
// world X/Z; Orbit drives the camera rig and is lateral only (Y is always 0).
type InputData struct {
	Move  InputSample
	Orbit mgl64.Vec2
}

var Input = donburi.NewComponentType[InputData]()
