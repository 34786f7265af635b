package config

// EntityCategory is a physics body category bitmask.
type EntityCategory uint32

const (
	CategoryNone   EntityCategory = 0
	CategoryPlayer EntityCategory = 1 << (iota - 1)
	CategoryGround
	CategoryCollectible
)

// Has reports whether any bit of other is set in c.
func (c EntityCategory) Has(other EntityCategory) bool {
	return c&other != 0
}

func (c EntityCategory) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryPlayer:
		return "player"
	case CategoryGround:
		return "ground"
	case CategoryCollectible:
		return "collectible"
	default:
		return "mixed"
	}
}

// BodyMasks holds the collision and contact-test masks of one entity kind.
type BodyMasks struct {
	Category        EntityCategory
	CollisionMask   EntityCategory
	ContactTestMask EntityCategory
}

// Bodies maps each entity kind to its masks. The player collides with ground
// and collectibles but only contact-tests collectibles.
var Bodies = map[EntityCategory]BodyMasks{
	CategoryPlayer: {
		Category:        CategoryPlayer,
		CollisionMask:   CategoryGround | CategoryCollectible,
		ContactTestMask: CategoryCollectible,
	},
	CategoryGround: {
		Category:      CategoryGround,
		CollisionMask: CategoryPlayer,
	},
	CategoryCollectible: {
		Category: CategoryCollectible,
	},
}
