package factory

import (
	"math/rand/v2"

	"github.com/automoto/donut-gather/archetypes"
	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Bounds is an inclusive integer rectangle on the X/Z plane.
type Bounds struct {
	MinX, MinZ int
	MaxX, MaxZ int
}

// SpawnBounds returns the configured spawn area.
func SpawnBounds() Bounds {
	return Bounds{
		MinX: cfg.Collectible.MinX, MinZ: cfg.Collectible.MinZ,
		MaxX: cfg.Collectible.MaxX, MaxZ: cfg.Collectible.MaxZ,
	}
}

// SpawnCollectibles creates count collectibles at integer X/Z positions drawn
// uniformly from bounds, on the ground. Positions may repeat. IDs continue
// from the registry's current size. A nil rng uses the configured seed.
func SpawnCollectibles(ecs *ecs.ECS, count int, bounds Bounds, rng *rand.Rand) []*donburi.Entry {
	if bounds.MaxX < bounds.MinX {
		bounds.MinX, bounds.MaxX = bounds.MaxX, bounds.MinX
	}
	if bounds.MaxZ < bounds.MinZ {
		bounds.MinZ, bounds.MaxZ = bounds.MaxZ, bounds.MinZ
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(cfg.Debug.Seed), 0))
	}

	var spawned []*donburi.Entry
	for i := 0; i < count; i++ {
		x := bounds.MinX + rng.IntN(bounds.MaxX-bounds.MinX+1)
		z := bounds.MinZ + rng.IntN(bounds.MaxZ-bounds.MinZ+1)
		pos := mgl64.Vec3{float64(x), cfg.Collectible.GroundLevel, float64(z)}
		spawned = append(spawned, CreateCollectible(ecs, pos))
	}
	return spawned
}

// CreateCollectible registers one collectible at pos.
func CreateCollectible(ecs *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	registry := GetOrCreateRegistry(ecs)
	collectible := archetypes.Collectible.Spawn(ecs)

	id := components.CollectibleID(len(registry.Entries))
	registry.Entries = append(registry.Entries, collectible.Entity())

	components.Collectible.SetValue(collectible, components.CollectibleData{ID: id})
	components.Transform.SetValue(collectible, components.TransformData{
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
	})
	components.Visual.SetValue(collectible, components.VisualData{})

	from, to := float32(0), float32(cfg.Collectible.BobHeight)
	duration := float32(cfg.Collectible.BobDuration)
	components.Bob.SetValue(collectible, components.BobData{
		Tween:    gween.New(from, to, duration, ease.InOutSine),
		From:     from,
		To:       to,
		Duration: duration,
	})

	attachBody(ecs, collectible, pos, cfg.Collectible.Radius, cfg.Bodies[cfg.CategoryCollectible], tags.ResolvCollectible)

	return collectible
}

// GetOrCreateRegistry returns the singleton collectible registry
func GetOrCreateRegistry(ecs *ecs.ECS) *components.RegistryData {
	entry, ok := components.Registry.First(ecs.World)
	if !ok {
		entry = archetypes.Registry.Spawn(ecs)
	}
	return components.Registry.Get(entry)
}
