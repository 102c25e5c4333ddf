package objects

import (
	"image/color"

	"github.com/cbodonnell/drizzle/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DropletField draws every live droplet at its current physics position.
type DropletField struct {
	*BaseObject

	session *game.Session
}

func NewDropletField(id string, session *game.Session) *DropletField {
	return &DropletField{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: 30,
		}),
		session: session,
	}
}

func (o *DropletField) Draw(screen *ebiten.Image) {
	screenHeight := float64(screen.Bounds().Dy())
	dropletColor := color.RGBA{0x4f, 0xc3, 0xf7, 0xff}
	coreColor := color.RGBA{0xb3, 0xe5, 0xfc, 0xff}
	for _, droplet := range o.session.Droplets() {
		x := float32(droplet.Position.X)
		y := float32(screenHeight - droplet.Position.Y)
		r := float32(droplet.Radius)
		vector.DrawFilledCircle(screen, x, y, r, dropletColor, false)
		vector.DrawFilledCircle(screen, x, y, r/3, coreColor, false)
	}
}
