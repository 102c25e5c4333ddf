package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Playfield draws the static backdrop of the game scene, a night sky
// with a thin ground strip along the bottom edge.
type Playfield struct {
	*BaseObject

	w, h float32
}

type NewPlayfieldOptions struct {
	// W is the width of the playfield in display units.
	W float64
	// H is the height of the playfield in display units.
	H float64
	// ZIndex is the z-index of the playfield.
	ZIndex int
}

func NewPlayfield(id string, opts NewPlayfieldOptions) *Playfield {
	return &Playfield{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		w: float32(opts.W),
		h: float32(opts.H),
	}
}

func (o *Playfield) Draw(screen *ebiten.Image) {
	skyColor := color.RGBA{0x10, 0x1a, 0x2b, 0xff}
	groundColor := color.RGBA{0x23, 0x36, 0x54, 0xff}
	vector.DrawFilledRect(screen, 0, 0, o.w, o.h, skyColor, false)
	vector.DrawFilledRect(screen, 0, o.h-4, o.w, 4, groundColor, false)
}
