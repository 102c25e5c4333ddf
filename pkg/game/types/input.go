package types

// InputState is a single frame of player input sampled by the client.
type InputState struct {
	MoveLeft  bool
	MoveRight bool
	// PointerActive is true while a mouse button or touch is held down.
	// While active, the bucket tracks PointerX instead of the keys.
	PointerActive bool
	// PointerX is the pointer's x position in display units.
	PointerX float64
}

// Direction returns the horizontal movement direction requested by the
// keyboard: -1 for left, 1 for right, 0 for neither or both.
func (i InputState) Direction() int {
	switch {
	case i.MoveLeft && !i.MoveRight:
		return -1
	case i.MoveRight && !i.MoveLeft:
		return 1
	}
	return 0
}
