package render

import (
	"fmt"

	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/fonts"
	"github.com/automoto/donut-gather/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the collection counter, and a banner once everything is gathered
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	collected, total := systems.CollectedCount(ecs.World)
	text.Draw(screen, fmt.Sprintf("Donuts: %d/%d", collected, total), fonts.HUD.Get(), 8, 20, cfg.White)

	if total > 0 && collected == total {
		drawCentered(screen, "All gathered!", fonts.Title, screen.Bounds().Dy()/3)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsPaused(ecs) {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.PauseOverlay, false)

	drawCentered(screen, "Paused", fonts.Title, screen.Bounds().Dy()/2)
	drawCentered(screen, "P / Esc to resume", fonts.HUD, screen.Bounds().Dy()/2+24)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y int) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, cfg.White)
}
