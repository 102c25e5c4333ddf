package types

import "github.com/cbodonnell/drizzle/pkg/kinematic"

// ContactKind classifies a begin-contact between two bodies.
type ContactKind uint8

const (
	// ContactCaught is a contact between the bucket and a droplet.
	ContactCaught ContactKind = iota
	// ContactMissed is a contact between the ground and a droplet.
	ContactMissed
)

func (k ContactKind) String() string {
	switch k {
	case ContactCaught:
		return "caught"
	case ContactMissed:
		return "missed"
	}
	return "unknown"
}

// ContactEvent is emitted when a droplet first touches the bucket or the ground.
type ContactEvent struct {
	Kind      ContactKind
	DropletID uint64
	// Position is the droplet's center at contact time in display units.
	Position kinematic.Vector
}
