package components

import (
	cfg "github.com/automoto/donut-gather/config"
	"github.com/yohamta/donburi"
)

// BodyData registers an entity with the physics collaborator.
type BodyData struct {
	cfg.BodyMasks
	Radius float64 // XZ footprint radius
}

var Body = donburi.NewComponentType[BodyData]()

// Contacts reports whether a and b should produce contact events.
func Contacts(a, b *BodyData) bool {
	return a.ContactTestMask.Has(b.Category) || b.ContactTestMask.Has(a.Category)
}

// ContactPair is an unordered pair of touching bodies; A is the body whose
// contact-test mask matched.
type ContactPair struct {
	A, B donburi.Entity
}

// ContactTrackerData remembers which pairs touched on the previous step so
// only newly begun contacts are reported.
type ContactTrackerData struct {
	Touching map[ContactPair]struct{}
}

var ContactTracker = donburi.NewComponentType[ContactTrackerData]()
