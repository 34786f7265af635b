package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/donut-gather/components"
	cfg "github.com/automoto/donut-gather/config"
	"github.com/automoto/donut-gather/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

func TestMarkCollectedOnlyOnce(t *testing.T) {
	e := newTestECS(t)
	factory.CreateCollectible(e, mgl64.Vec3{1, 0, 1})
	factory.CreateCollectible(e, mgl64.Vec3{2, 0, 2})

	if !MarkCollected(e.World, 1) {
		t.Fatal("first MarkCollected(1) = false, want true")
	}
	for i := 0; i < 3; i++ {
		if MarkCollected(e.World, 1) {
			t.Fatalf("repeat MarkCollected(1) = true")
		}
	}
	if MarkCollected(e.World, 7) || MarkCollected(e.World, -1) {
		t.Error("unknown id reported as newly collected")
	}

	collected, total := CollectedCount(e.World)
	if collected != 1 || total != 2 {
		t.Errorf("CollectedCount = %d/%d, want 1/2", collected, total)
	}
}

func TestCollectibleIDsFollowSpawnOrder(t *testing.T) {
	e := newTestECS(t)
	spawned := factory.SpawnCollectibles(e, 5, factory.SpawnBounds(), rand.New(rand.NewPCG(7, 0)))
	for i, entry := range spawned {
		if got := components.Collectible.Get(entry).ID; got != components.CollectibleID(i) {
			t.Errorf("collectible %d has id %d", i, got)
		}
		found, ok := CollectibleByID(e.World, components.CollectibleID(i))
		if !ok || found.Entity() != entry.Entity() {
			t.Errorf("CollectibleByID(%d) did not return the spawned entry", i)
		}
	}
}

func TestSpawnCollectibles(t *testing.T) {
	bounds := factory.Bounds{MinX: -2, MinZ: 3, MaxX: 2, MaxZ: 4}

	tests := []struct {
		name  string
		count int
	}{
		{"none", 0},
		{"one", 1},
		{"many", 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			spawned := factory.SpawnCollectibles(e, tt.count, bounds, rand.New(rand.NewPCG(1, 2)))
			if len(spawned) != tt.count {
				t.Fatalf("spawned %d, want %d", len(spawned), tt.count)
			}
			for _, entry := range spawned {
				p := components.Transform.Get(entry).Position
				if p[0] < -2 || p[0] > 2 || p[2] < 3 || p[2] > 4 {
					t.Errorf("position %v outside bounds", p)
				}
				if p[0] != float64(int(p[0])) || p[2] != float64(int(p[2])) {
					t.Errorf("position %v is not on the integer grid", p)
				}
				if p[1] != cfg.Collectible.GroundLevel {
					t.Errorf("position %v not on the ground", p)
				}
			}
			if _, total := CollectedCount(e.World); total != tt.count {
				t.Errorf("registry holds %d, want %d", total, tt.count)
			}
		})
	}
}

func TestSpawnCollectiblesIsSeeded(t *testing.T) {
	positions := func() []mgl64.Vec3 {
		e := newTestECS(t)
		var out []mgl64.Vec3
		for _, entry := range factory.SpawnCollectibles(e, 10, factory.SpawnBounds(), rand.New(rand.NewPCG(42, 42))) {
			out = append(out, components.Transform.Get(entry).Position)
		}
		return out
	}
	a, b := positions(), positions()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}
