package systems

import (
	"testing"

	"github.com/automoto/donut-gather/components"
	"github.com/automoto/donut-gather/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func countContacts(e *ecs.ECS) *int {
	n := new(int)
	components.ContactEvent.Subscribe(e.World, func(donburi.World, components.ContactEventData) {
		*n++
	})
	return n
}

func TestContactsBeginOnce(t *testing.T) {
	e := newTestECS(t)
	contacts := countContacts(e)
	player := factory.CreatePlayer(e, mgl64.Vec3{3, 0, 3})
	factory.CreateCollectible(e, mgl64.Vec3{3, 0, 3})

	for i := 0; i < 3; i++ {
		UpdateContacts(e)
		UpdateCollisions(e)
	}
	if *contacts != 1 {
		t.Fatalf("contacts while overlapping = %d, want 1", *contacts)
	}

	// Leave and come back: a new contact begins.
	components.Transform.Get(player).Position = mgl64.Vec3{-5, 0, -5}
	UpdateContacts(e)
	UpdateCollisions(e)
	components.Transform.Get(player).Position = mgl64.Vec3{3, 0, 3}
	UpdateContacts(e)
	UpdateCollisions(e)
	if *contacts != 2 {
		t.Errorf("contacts after re-entering = %d, want 2", *contacts)
	}
}

func TestContactsNeedOverlap(t *testing.T) {
	e := newTestECS(t)
	contacts := countContacts(e)
	factory.CreatePlayer(e, mgl64.Vec3{3, 0, 3})
	factory.CreateCollectible(e, mgl64.Vec3{3.9, 0, 3})

	UpdateContacts(e)
	UpdateCollisions(e)
	if *contacts != 0 {
		t.Errorf("contacts = %d for separated bodies, want 0", *contacts)
	}
}

func TestGroundDoesNotReportContacts(t *testing.T) {
	e := newTestECS(t)
	contacts := countContacts(e)
	factory.CreatePlayer(e, mgl64.Vec3{0, 0, 0})

	UpdateContacts(e)
	UpdateCollisions(e)
	if *contacts != 0 {
		t.Errorf("contacts = %d with only ground nearby, want 0", *contacts)
	}
}
