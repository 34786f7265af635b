// Package render draws the world with ebiten. It reads components only and
// never changes game state.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/shared/gamemath"
	"github.com/automoto/donut-gather/systems"
	"github.com/automoto/donut-gather/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const gridStep = 2.0

// sprite is one depth-sorted disc on screen
type sprite struct {
	x, y, r, depth float64
	draw           func(screen *ebiten.Image, s sprite)
}

func projection(ecs *ecs.ECS, screen *ebiten.Image) (gamemath.Projection, bool) {
	pose, ok := systems.CameraView(ecs.World)
	if !ok {
		return gamemath.Projection{}, false
	}
	b := screen.Bounds()
	return gamemath.NewProjection(pose, b.Dx(), b.Dy(), cfg.Camera.FieldOfView, cfg.Camera.ZNear, cfg.Camera.ZFar), true
}

// DrawGround fills the sky and draws the ground grid
func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)
	proj, ok := projection(ecs, screen)
	if !ok {
		return
	}

	ext := cfg.Physics.HalfExtent
	y := cfg.Player.BaseAltitude
	for v := -ext; v <= ext; v += gridStep {
		drawWorldLine(screen, proj, mgl64.Vec3{-ext, y, v}, mgl64.Vec3{ext, y, v}, cfg.GridColor)
		drawWorldLine(screen, proj, mgl64.Vec3{v, y, -ext}, mgl64.Vec3{v, y, ext}, cfg.GridColor)
	}
}

// drawWorldLine draws a world segment in unit pieces, dropping pieces that
// leave the view volume.
func drawWorldLine(screen *ebiten.Image, proj gamemath.Projection, a, b mgl64.Vec3, clr color.Color) {
	n := int(math.Ceil(b.Sub(a).Len()))
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		p0 := gamemath.Lerp3(a, b, float64(i)/float64(n))
		p1 := gamemath.Lerp3(a, b, float64(i+1)/float64(n))
		x0, y0, _, ok0 := proj.Project(p0)
		x1, y1, _, ok1 := proj.Project(p1)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
	}
}

// DrawEntities draws the player, collectibles and particle bursts back to front
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	proj, ok := projection(ecs, screen)
	if !ok {
		return
	}

	var sprites []sprite

	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		visual := components.Visual.Get(e)
		if visual.Hidden {
			return
		}
		pos := components.Transform.Get(e).Position
		pos[1] += cfg.Collectible.Radius + visual.OffsetY
		if s, ok := discAt(proj, pos, cfg.Collectible.Radius, drawDonut); ok {
			sprites = append(sprites, s)
		}
		sprites = appendShadow(sprites, proj, components.Transform.Get(e).Position, cfg.Collectible.Radius)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		pos := t.Position
		pos[1] += cfg.Player.Radius
		if s, ok := discAt(proj, pos, cfg.Player.Radius, drawWolf); ok {
			sprites = append(sprites, s)
		}
		sprites = appendShadow(sprites, proj, t.Position, cfg.Player.Radius)

		// Nose marks the facing direction.
		nose := pos.Add(t.Orientation.Rotate(gamemath.ModelForward).Mul(cfg.Player.Radius * 1.3))
		if s, ok := discAt(proj, nose, cfg.Player.Radius*0.3, drawNose); ok {
			sprites = append(sprites, s)
		}
	})

	components.ParticleBurst.Each(ecs.World, func(e *donburi.Entry) {
		burst := components.ParticleBurst.Get(e)
		def := cfg.Particle.Kinds[burst.Kind]
		size := 0.06 + 0.04*(def.MaxScale-burst.Scale)
		for _, d := range burst.Directions {
			pos := burst.Origin.Add(d.Mul(burst.Scale))
			clr := def.Color
			if s, ok := discAt(proj, pos, size, func(screen *ebiten.Image, s sprite) {
				vector.FillCircle(screen, float32(s.x), float32(s.y), float32(s.r), clr, true)
			}); ok {
				sprites = append(sprites, s)
			}
		}
	})

	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].depth > sprites[j].depth })
	for _, s := range sprites {
		s.draw(screen, s)
	}
}

func discAt(proj gamemath.Projection, pos mgl64.Vec3, radius float64, draw func(*ebiten.Image, sprite)) (sprite, bool) {
	x, y, depth, ok := proj.Project(pos)
	if !ok {
		return sprite{}, false
	}
	return sprite{x: x, y: y, r: math.Max(1, proj.Scale(radius, depth)), depth: depth, draw: draw}, true
}

func appendShadow(sprites []sprite, proj gamemath.Projection, ground mgl64.Vec3, radius float64) []sprite {
	ground[1] = cfg.Player.BaseAltitude
	s, ok := discAt(proj, ground, radius*0.9, drawShadow)
	if !ok {
		return sprites
	}
	s.depth += 1e-3 // under whatever stands on it
	return append(sprites, s)
}

func drawDonut(screen *ebiten.Image, s sprite) {
	vector.StrokeCircle(screen, float32(s.x), float32(s.y), float32(s.r*0.7), float32(s.r*0.6), cfg.Donut, true)
}

func drawWolf(screen *ebiten.Image, s sprite) {
	vector.FillCircle(screen, float32(s.x), float32(s.y), float32(s.r), cfg.Wolf, true)
}

func drawNose(screen *ebiten.Image, s sprite) {
	vector.FillCircle(screen, float32(s.x), float32(s.y), float32(s.r), cfg.White, true)
}

func drawShadow(screen *ebiten.Image, s sprite) {
	vector.FillCircle(screen, float32(s.x), float32(s.y), float32(s.r), cfg.ShadowTint, true)
}
