package systems

import (
	"github.com/automoto/donut-gather/components"
	"github.com/yohamta/donburi"
)

// MarkCollected flips a collectible to collected. It returns true only on
// the first call for id; unknown ids and repeats return false.
func MarkCollected(w donburi.World, id components.CollectibleID) bool {
	entry, ok := CollectibleByID(w, id)
	if !ok {
		return false
	}
	data := components.Collectible.Get(entry)
	if data.Collected {
		return false
	}
	data.Collected = true
	return true
}

// CollectibleByID looks up a registered collectible.
func CollectibleByID(w donburi.World, id components.CollectibleID) (*donburi.Entry, bool) {
	registry, ok := registryOf(w)
	if !ok || id < 0 || int(id) >= len(registry.Entries) {
		return nil, false
	}
	entity := registry.Entries[id]
	if !w.Valid(entity) {
		return nil, false
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(components.Collectible) {
		return nil, false
	}
	return entry, true
}

// CollectedCount returns how many registered collectibles are collected.
func CollectedCount(w donburi.World) (collected, total int) {
	registry, ok := registryOf(w)
	if !ok {
		return 0, 0
	}
	for i := range registry.Entries {
		entry, ok := CollectibleByID(w, components.CollectibleID(i))
		if !ok {
			continue
		}
		total++
		if components.Collectible.Get(entry).Collected {
			collected++
		}
	}
	return collected, total
}

func registryOf(w donburi.World) (*components.RegistryData, bool) {
	entry, ok := components.Registry.First(w)
	if !ok {
		return nil, false
	}
	return components.Registry.Get(entry), true
}
