package render

import (
	"image/color"

	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const minimapSize = 120

// DrawDebug draws a top-down map of the contact space in the corner
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	spaceSize := 2 * cfg.Physics.HalfExtent * cfg.Physics.SpaceScale
	scale := minimapSize / spaceSize
	originX := float64(screen.Bounds().Dx()) - minimapSize - 8
	originY := 8.0

	vector.FillRect(screen, float32(originX), float32(originY), minimapSize, minimapSize, color.RGBA{0, 0, 0, 120}, false)

	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvGround) {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvCollectible) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		}

		x := float32(originX + obj.X*scale)
		y := float32(originY + obj.Y*scale)
		w := max(float32(obj.W*scale), 1)
		h := max(float32(obj.H*scale), 1)
		vector.FillRect(screen, x, y, w, h, c, false)
	}
}
