package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/automoto/donut-gather/assets"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/fonts"
	"github.com/automoto/donut-gather/render"
	"github.com/automoto/donut-gather/systems"
	"github.com/automoto/donut-gather/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The audio context may only be created once per process
var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

// WorldScene is the gathering game: one player, a follow camera and a field
// of collectibles.
type WorldScene struct {
	ecs      *ecs.ECS
	controls Controls
	once     sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.controls.Poll(ws.ecs)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	if err := fonts.LoadDefaultFonts(); err != nil {
		panic("failed to load fonts: " + err.Error())
	}

	cues := assets.NewCueSynth(audioContext)
	if err := cues.Preload(); err != nil {
		log.Printf("Warning: could not prepare sound cues: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Gameplay systems, in frame order, wrapped with the pause check
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateContacts))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFeedback))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCameraRig))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// Audio drains its queue even while paused
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, render.DrawGround)
	ecs.AddRenderer(cfg.Default, render.DrawEntities)
	ecs.AddRenderer(cfg.Default, render.DrawHUD)
	ecs.AddRenderer(cfg.Default, render.DrawDebug)
	ecs.AddRenderer(cfg.Default, render.DrawPause)

	ws.ecs = ecs

	systems.RegisterCollisionHandlers(ws.ecs)
	systems.RegisterFeedbackHandlers(ws.ecs)
	systems.SetCuePlayer(ws.ecs, cues)

	// The space must exist before any body is created.
	factory.CreateSpace(ws.ecs)
	factory.CreateGround(ws.ecs, cfg.Player.BaseAltitude)

	spawn := cfg.Player.SpawnPosition
	factory.CreatePlayer(ws.ecs, spawn)
	factory.CreateCameraRig(ws.ecs, spawn, cfg.Camera.InitialOffset)

	rng := rand.New(rand.NewPCG(uint64(cfg.Debug.Seed), 0))
	factory.SpawnCollectibles(ws.ecs, cfg.Collectible.Count, factory.SpawnBounds(), rng)

	if cfg.Debug.LogEvents {
		_, total := systems.CollectedCount(ws.ecs.World)
		log.Printf("spawned %d collectibles with seed %d", total, cfg.Debug.Seed)
	}
}
