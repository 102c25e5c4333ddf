package types

import "github.com/cbodonnell/drizzle/pkg/kinematic"

// BucketState is a render snapshot of the player's bucket.
type BucketState struct {
	// Position is the bottom-left corner of the bucket in display units.
	Position kinematic.Vector `json:"position"`
	Velocity kinematic.Vector `json:"velocity"`
	Width    float64          `json:"width"`
	Height   float64          `json:"height"`
}

// Equal returns true if the bucket state is equal to the other bucket state
func (b *BucketState) Equal(other *BucketState) bool {
	return b.Position.X == other.Position.X &&
		b.Position.Y == other.Position.Y &&
		b.Velocity.X == other.Velocity.X &&
		b.Velocity.Y == other.Velocity.Y &&
		b.Width == other.Width &&
		b.Height == other.Height
}

// Copy returns a copy of the bucket state.
func (b *BucketState) Copy() *BucketState {
	return &BucketState{
		Position: b.Position,
		Velocity: b.Velocity,
		Width:    b.Width,
		Height:   b.Height,
	}
}
