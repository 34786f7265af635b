package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Ground      = donburi.NewTag().SetName("Ground")
	Collectible = donburi.NewTag().SetName("Collectible")
	Camera      = donburi.NewTag().SetName("Camera")
	Effect      = donburi.NewTag().SetName("Effect")
)

// Resolv tags for contact detection
const (
	ResolvPlayer      = "player"
	ResolvGround      = "ground"
	ResolvCollectible = "collectible"
)
