package systems

import (
	"math"

	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MotionSignal is an input edge that may change the player's state.
type MotionSignal int

const (
	SignalBegin MotionSignal = iota
	SignalStop
)

// NextState is the player state machine. Idle only leaves on SignalBegin and
// Running only leaves on SignalStop; every other pair keeps the state.
func NextState(current cfg.StateID, signal MotionSignal) cfg.StateID {
	switch {
	case current == cfg.Idle && signal == SignalBegin:
		return cfg.Running
	case current == cfg.Running && signal == SignalStop:
		return cfg.Idle
	}
	return current
}

// UpdatePosition moves the player along the X/Z plane by the sample's
// direction times velocityScale. Only an active sample turns the player to
// face the movement. A zero direction, or a scale that is not a positive
// finite number, leaves the transform unchanged.
func UpdatePosition(e *donburi.Entry, sample components.InputSample, velocityScale float64) {
	if !(velocityScale > 0) || math.IsInf(velocityScale, 1) {
		return
	}
	d := gamemath.ClampUnit(sample.Direction)
	if gamemath.IsZero2(d) {
		return
	}

	transform := components.Transform.Get(e)
	transform.Position = transform.Position.Add(gamemath.Planar(d).Mul(velocityScale))

	if sample.Active {
		if q, ok := gamemath.YawToward(d); ok {
			transform.Orientation = q
		}
		if e.HasComponent(components.Player) {
			components.Player.Get(e).Facing = d
		}
	}
	syncObject(e)
}

// SetState assigns the player's state and runs the state-enter hook. Only
// Idle and Running are accepted; setting the current state again is a no-op.
func SetState(e *donburi.Entry, next cfg.StateID) {
	if next != cfg.Idle && next != cfg.Running {
		return
	}
	state := components.State.Get(e)
	if state.CurrentState == next {
		return
	}

	from := state.CurrentState
	state.PreviousState = from
	state.CurrentState = next
	state.StateTimer = 0

	if e.HasComponent(components.Player) {
		if hook := components.Player.Get(e).OnStateEnter; hook != nil {
			hook(e, from, next)
		}
	}
}

// PlayerPosition returns the player's world position.
func PlayerPosition(e *donburi.Entry) mgl64.Vec3 {
	return components.Transform.Get(e).Position
}
