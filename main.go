package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", config.Debug.Seed, "Collectible placement seed")
	debug := flag.Bool("debug", false, "Log collection events and draw the contact map")
	flag.Parse()

	config.Debug.Seed = *seed
	config.Debug.LogEvents = *debug
	config.Debug.Overlay = *debug

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Donut Gather")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
