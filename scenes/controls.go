package scenes

import (
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/shared/gamemath"
	"github.com/automoto/donut-gather/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Controls turns keyboard, gamepad and mouse state into drag and orbit
// gestures. Gestures begin on the first frame with input and end on the
// first frame without.
type Controls struct {
	gamepadIDs []ebiten.GamepadID

	dragging bool
	orbiting bool

	mouseHeld  bool
	lastMouseX int
}

var (
	keysLeft    = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keysRight   = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	keysForward = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	keysBack    = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
)

// Poll reads this frame's input and forwards gesture edges to the systems.
func (c *Controls) Poll(e *ecs.ECS) {
	c.gamepadIDs = ebiten.AppendGamepadIDs(c.gamepadIDs[:0])

	if c.pausePressed() {
		systems.TogglePause(e)
		c.dragging, c.orbiting = false, false
	}
	if systems.IsPaused(e) {
		return
	}

	move := c.moveInput()
	moving := !gamemath.IsZero2(move)
	switch {
	case moving && !c.dragging:
		c.dragging = true
		systems.OnDragBegin(e)
		systems.OnDrag(e, move)
	case moving:
		systems.OnDrag(e, move)
	case c.dragging:
		c.dragging = false
		systems.OnDragEnd(e)
	}

	orbit := c.orbitInput()
	switch {
	case !gamemath.IsZero2(orbit):
		c.orbiting = true
		systems.OnOrbit(e, orbit)
	case c.orbiting:
		c.orbiting = false
		systems.OnOrbitEnd(e)
	}
}

// moveInput combines the keyboard and the left sticks. Screen up is world -Z.
func (c *Controls) moveInput() mgl64.Vec2 {
	var d mgl64.Vec2
	if anyKeyPressed(keysLeft) {
		d[0]--
	}
	if anyKeyPressed(keysRight) {
		d[0]++
	}
	if anyKeyPressed(keysForward) {
		d[1]--
	}
	if anyKeyPressed(keysBack) {
		d[1]++
	}

	for _, gpID := range c.gamepadIDs {
		d = d.Add(stick(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical))
	}
	return d
}

// orbitInput combines Q/E, right sticks and horizontal right-button mouse drags.
func (c *Controls) orbitInput() mgl64.Vec2 {
	var d mgl64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		d[0] -= cfg.Input.KeyOrbitStrength
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		d[0] += cfg.Input.KeyOrbitStrength
	}

	for _, gpID := range c.gamepadIDs {
		d = d.Add(stick(gpID, ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical))
	}

	x, _ := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if c.mouseHeld {
			d[0] += float64(x-c.lastMouseX) * cfg.Input.MouseOrbitScale
		}
		c.mouseHeld = true
	} else {
		c.mouseHeld = false
	}
	c.lastMouseX = x

	return d
}

func (c *Controls) pausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	for _, gpID := range c.gamepadIDs {
		if inpututil.IsStandardGamepadButtonJustPressed(gpID, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

// stick reads one analog stick with the configured radial deadzone
func stick(gpID ebiten.GamepadID, h, v ebiten.StandardGamepadAxis) mgl64.Vec2 {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return mgl64.Vec2{}
	}
	d := mgl64.Vec2{
		ebiten.StandardGamepadAxisValue(gpID, h),
		ebiten.StandardGamepadAxisValue(gpID, v),
	}
	if d.Len() < cfg.Input.AnalogDeadzone {
		return mgl64.Vec2{}
	}
	return d
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
