package objects

import (
	"image/color"

	"github.com/cbodonnell/drizzle/client/fonts"
	"github.com/cbodonnell/drizzle/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PausedOverlay dims the playfield and shows a pause message while
// the session is paused. It draws nothing otherwise.
type PausedOverlay struct {
	*BaseObject

	session *game.Session
}

func NewPausedOverlay(id string, session *game.Session) *PausedOverlay {
	return &PausedOverlay{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: 200,
		}),
		session: session,
	}
}

func (o *PausedOverlay) Draw(screen *ebiten.Image) {
	if !o.session.Paused() {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{0x00, 0x00, 0x00, 0xa0}, false)

	drawTextCentered(screen, "PAUSED", fonts.TTFLargeFont, width/2, height/2, color.White)
	drawTextCentered(screen, "PRESS P TO RESUME", fonts.TTFSmallFont, width/2, height/2+36, color.RGBA{0xb0, 0xb8, 0xc4, 0xff})
}
