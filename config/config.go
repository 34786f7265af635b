package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed         float64 // world units per second at full stick deflection
	VelocityScale float64 // per-tick displacement scale handed to UpdatePosition

	// Placement
	SpawnPosition mgl64.Vec3
	BaseAltitude  float64 // ground reference height under the player

	// Walk dust
	DustInterval int // frames between dust puffs while running

	// Dimensions (XZ footprint for contact tests)
	Radius float64
}

// CameraConfig contains the follow-camera rig configuration
type CameraConfig struct {
	// Initial placement, relative to the world origin. Distance and
	// altitude of the rig are measured from this once at setup.
	InitialOffset mgl64.Vec3

	LookAtHeight      float64 // look-at target height above the player's base altitude
	LookAtInfluence   float64 // slerp factor per frame toward the look-at rotation
	OrbitSensitivity  float64 // radians per unit of orbit input per frame
	InfluenceRampStep float64 // acceleration influence regained per idle frame

	// Acceleration smoothing
	MaxLinearVelocity     float64
	MaxLinearAcceleration float64
	Damping               float64

	// Projection (consumed by the render collaborator)
	FieldOfView float64 // degrees
	ZNear       float64
	ZFar        float64
}

// CollectibleConfig contains collectible spawn configuration
type CollectibleConfig struct {
	Count       int
	MinX, MaxX  int
	MinZ, MaxZ  int
	GroundLevel float64
	Radius      float64

	// Idle bob animation
	BobHeight   float64
	BobDuration float64 // seconds per half cycle
}

// ParticleConfig contains particle burst configuration
type ParticleConfig struct {
	Kinds map[ParticleKind]ParticleKindConfig
}

// ParticleKindConfig describes one particle burst kind
type ParticleKindConfig struct {
	Duration float64 // seconds
	MaxScale float64
	Count    int // sprites drawn per burst
	Color    color.RGBA
}

// PhysicsConfig contains the contact space configuration
type PhysicsConfig struct {
	// Half extent of the square XZ area covered by the contact space
	HalfExtent float64
	// Space units per world unit
	SpaceScale float64
	// Cell size of the resolv spatial hash, in space units
	CellSize int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogEvents bool // Log collection events
	Overlay   bool // Draw the contact space minimap
	Seed      int64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Collectible CollectibleConfig
var Particle ParticleConfig
var Physics PhysicsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sky          = color.RGBA{R: 110, G: 170, B: 230, A: 255}
	Wolf         = color.RGBA{R: 120, G: 110, B: 100, A: 255}
	Donut        = color.RGBA{R: 230, G: 130, B: 170, A: 255}
	Sparkle      = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	Dust         = color.RGBA{R: 180, G: 160, B: 120, A: 200}
	GridColor    = color.RGBA{R: 60, G: 120, B: 50, A: 255}
	ShadowTint   = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	PauseOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:         6.0,
		SpawnPosition: mgl64.Vec3{0, 0, 0},
		BaseAltitude:  0,
		DustInterval:  12,
		Radius:        0.4,
	}
	Player.VelocityScale = Player.Speed / float64(C.TPS)

	Camera = CameraConfig{
		InitialOffset:     mgl64.Vec3{0, 4, 8},
		LookAtHeight:      0.5,
		LookAtInfluence:   0.07,
		OrbitSensitivity:  0.05,
		InfluenceRampStep: 0.01,

		MaxLinearVelocity:     1500.0,
		MaxLinearAcceleration: 50.0,
		Damping:               0.05,

		FieldOfView: 60,
		ZNear:       0.1,
		ZFar:        200,
	}

	Collectible = CollectibleConfig{
		Count:       20,
		MinX:        -10,
		MaxX:        10,
		MinZ:        -10,
		MaxZ:        10,
		GroundLevel: 0,
		Radius:      0.35,
		BobHeight:   0.15,
		BobDuration: 0.8,
	}

	Particle = ParticleConfig{
		Kinds: map[ParticleKind]ParticleKindConfig{
			ParticleCollect: {
				Duration: 0.6,
				MaxScale: 1.2,
				Count:    10,
				Color:    Sparkle,
			},
			ParticleWalkDust: {
				Duration: 0.35,
				MaxScale: 0.4,
				Count:    3,
				Color:    Dust,
			},
		},
	}

	Physics = PhysicsConfig{
		HalfExtent: 16,
		SpaceScale: 16,
		CellSize:   8,
	}

	Debug = DebugConfig{
		Seed: 1,
	}
}
