package objects

import "github.com/hajimehoshi/ebiten/v2"

// Lifecycle is the frame loop contract shared by scenes and game
// objects: Init once, Update and Draw every frame, Destroy once when
// the scene changes.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}
