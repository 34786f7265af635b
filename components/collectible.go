package components

import (
	"github.com/yohamta/donburi"
)

// CollectibleID is a collectible's index in the registry.
type CollectibleID int

type CollectibleData struct {
	ID        CollectibleID
	Collected bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()

// RegistryData owns the spawned collectibles in spawn order. Entries are
// never removed, so an ID stays valid for the life of the world.
type RegistryData struct {
	Entries []donburi.Entity
}

var Registry = donburi.NewComponentType[RegistryData]()
