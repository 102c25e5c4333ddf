package types

import "github.com/cbodonnell/drizzle/pkg/kinematic"

// DropletState is a render snapshot of a falling droplet.
type DropletState struct {
	ID uint64 `json:"id"`
	// Position is the center of the droplet's circular body in display units.
	Position kinematic.Vector `json:"position"`
	Velocity kinematic.Vector `json:"velocity"`
	Radius   float64          `json:"radius"`
}

// Copy returns a copy of the droplet state.
func (d *DropletState) Copy() *DropletState {
	return &DropletState{
		ID:       d.ID,
		Position: d.Position,
		Velocity: d.Velocity,
		Radius:   d.Radius,
	}
}
