package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/cbodonnell/drizzle/pkg/game/types"
	"github.com/cbodonnell/drizzle/pkg/kinematic"
)

// ContactHandler receives catch and miss events as they are detected.
// Events are dispatched synchronously during World.Step, so handlers
// must not create or destroy bodies.
type ContactHandler interface {
	HandleContact(event types.ContactEvent)
}

// ContactHandlerFunc adapts a function to the ContactHandler interface.
type ContactHandlerFunc func(event types.ContactEvent)

func (f ContactHandlerFunc) HandleContact(event types.ContactEvent) {
	f(event)
}

// contactListener classifies begin-contacts by the roles of the two
// bodies. Bucket and droplet produce a catch, ground and droplet a
// miss, anything else is ignored. The droplet is marked for removal in
// both cases; the body itself is destroyed later by ReapRemoved.
type contactListener struct {
	world   *World
	handler ContactHandler
}

var _ box2d.B2ContactListenerInterface = &contactListener{}

func (l *contactListener) BeginContact(contact box2d.B2ContactInterface) {
	dataA, okA := contact.GetFixtureA().GetBody().GetUserData().(*bodyData)
	dataB, okB := contact.GetFixtureB().GetBody().GetUserData().(*bodyData)
	if !okA || !okB {
		return
	}

	var kind types.ContactKind
	var d *droplet
	switch {
	case dataA.role == types.RoleBucket && dataB.role == types.RoleDroplet:
		kind, d = types.ContactCaught, dataB.droplet
	case dataB.role == types.RoleBucket && dataA.role == types.RoleDroplet:
		kind, d = types.ContactCaught, dataA.droplet
	case dataA.role == types.RoleGround && dataB.role == types.RoleDroplet:
		kind, d = types.ContactMissed, dataB.droplet
	case dataB.role == types.RoleGround && dataA.role == types.RoleDroplet:
		kind, d = types.ContactMissed, dataA.droplet
	default:
		return
	}

	// A droplet touching the bucket and the ground in the same step
	// only counts once.
	if d == nil || d.removed {
		return
	}

	if l.handler != nil {
		position := d.body.GetPosition()
		l.handler.HandleContact(types.ContactEvent{
			Kind:      kind,
			DropletID: d.id,
			Position: kinematic.Vector{
				X: toPixels(position.X),
				Y: toPixels(position.Y),
			},
		})
	}
	d.removed = true
}

func (l *contactListener) EndContact(contact box2d.B2ContactInterface) {
}

func (l *contactListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {
}

func (l *contactListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}
