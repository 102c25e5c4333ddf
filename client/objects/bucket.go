package objects

import (
	"image/color"

	"github.com/cbodonnell/drizzle/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Bucket draws the player's bucket at its current physics position.
type Bucket struct {
	*BaseObject

	session *game.Session
}

func NewBucket(id string, session *game.Session) *Bucket {
	return &Bucket{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: 20,
		}),
		session: session,
	}
}

func (o *Bucket) Draw(screen *ebiten.Image) {
	state := o.session.Bucket()
	if state == nil {
		return
	}

	x := float32(state.Position.X)
	y := float32(float64(screen.Bounds().Dy())-state.Position.Y) - float32(state.Height)
	w := float32(state.Width)
	h := float32(state.Height)

	bodyColor := color.RGBA{0x2e, 0x59, 0x8c, 0xff}
	rimColor := color.RGBA{0x4a, 0x7f, 0xc1, 0xff}
	vector.DrawFilledRect(screen, x, y, w, h, bodyColor, false)
	vector.DrawFilledRect(screen, x, y, w, 6, rimColor, false)
}
