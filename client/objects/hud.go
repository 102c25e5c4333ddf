package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/drizzle/client/audio"
	"github.com/cbodonnell/drizzle/client/fonts"
	"github.com/cbodonnell/drizzle/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD draws the score state in screen coordinates on top of the
// playfield.
type HUD struct {
	*BaseObject

	session      *game.Session
	audioManager *audio.Manager
}

func NewHUD(id string, session *game.Session, audioManager *audio.Manager) *HUD {
	return &HUD{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: 100,
		}),
		session:      session,
		audioManager: audioManager,
	}
}

func (o *HUD) Draw(screen *ebiten.Image) {
	snapshot := o.session.Score()

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	gold := color.RGBA{0xff, 0xd7, 0x00, 0xff}
	gray := color.RGBA{0xb0, 0xb8, 0xc4, 0xff}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawText(screen, fmt.Sprintf("SCORE %d", snapshot.Score), fonts.TTFNormalFont, 16, 32, white)
	drawTextRight(screen, fmt.Sprintf("HIGH %d", snapshot.HighScore), fonts.TTFNormalFont, width-16, 32, white)

	if snapshot.Multiplier > 1 {
		drawText(screen, fmt.Sprintf("X%d", snapshot.Multiplier), fonts.TTFNormalFont, 16, 60, gold)
	}
	if snapshot.ComboCount > 0 {
		drawText(screen, fmt.Sprintf("COMBO %d", snapshot.ComboCount), fonts.TTFSmallFont, 16, 84, gray)
	}

	drawText(screen, fmt.Sprintf("CAUGHT %d  MISSED %d", snapshot.DropsCaught, snapshot.DropsMissed), fonts.TTFSmallFont, 16, 104, gray)
	if snapshot.HasAccuracy {
		drawText(screen, fmt.Sprintf("ACC %.1f%%", snapshot.Accuracy), fonts.TTFSmallFont, 16, 124, gray)
	}

	minutes := int(snapshot.GameTime) / 60
	seconds := int(snapshot.GameTime) % 60
	drawTextRight(screen, fmt.Sprintf("TIME %d:%02d", minutes, seconds), fonts.TTFSmallFont, width-16, 56, gray)

	if snapshot.ComboBannerVisible {
		banner := fmt.Sprintf("%d COMBO!", snapshot.ComboCount)
		drawTextCentered(screen, banner, fonts.TTFLargeFont, width/2, height/3, gold)
	}

	drawText(screen, "P PAUSE  R RESTART  M MUTE  ESC MENU", fonts.TTFSmallFont, 16, height-10, gray)
	if o.audioManager.Muted() {
		drawTextRight(screen, "MUTED", fonts.TTFSmallFont, width-16, height-10, gold)
	}
}

func drawText(screen *ebiten.Image, s string, f font.Face, x, y float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, f, op)
}

func drawTextRight(screen *ebiten.Image, s string, f font.Face, right, y float64, clr color.Color) {
	bounds, _ := font.BoundString(f, s)
	drawText(screen, s, f, right-float64(bounds.Max.X>>6), y, clr)
}

func drawTextCentered(screen *ebiten.Image, s string, f font.Face, cx, y float64, clr color.Color) {
	bounds, _ := font.BoundString(f, s)
	drawText(screen, s, f, cx-float64(bounds.Max.X>>6)/2, y, clr)
}
