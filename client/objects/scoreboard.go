package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/drizzle/client/fonts"
	"github.com/cbodonnell/drizzle/pkg/repositories"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scoreboard draws a table of the best saved runs.
type Scoreboard struct {
	*BaseObject

	records []*repositories.ScoreRecord
}

func NewScoreboard(id string, records []*repositories.ScoreRecord) *Scoreboard {
	return &Scoreboard{
		BaseObject: NewBaseObject(id, nil),
		records:    records,
	}
}

func (o *Scoreboard) Draw(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	gray := color.RGBA{0xb0, 0xb8, 0xc4, 0xff}

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{0x10, 0x1a, 0x2b, 0xff}, false)
	drawTextCentered(screen, "HIGH SCORES", fonts.TTFLargeFont, width/2, 72, white)

	if len(o.records) == 0 {
		drawTextCentered(screen, "NO SCORES YET", fonts.TTFNormalFont, width/2, 160, gray)
	}

	y := 136.0
	for i, record := range o.records {
		caught := record.DropsCaught
		missed := record.DropsMissed
		accuracy := "-"
		if caught+missed > 0 {
			accuracy = fmt.Sprintf("%.1f%%", 100*float64(caught)/float64(caught+missed))
		}
		line := fmt.Sprintf("%2d.  %6d   %3d CAUGHT  %3d MISSED  %7s   %s",
			i+1, record.Score, caught, missed, accuracy, record.CreatedAt.Format("2006-01-02"))
		drawText(screen, line, fonts.TTFNormalFont, 72, y, white)
		y += 30
	}

	drawTextCentered(screen, "PRESS ESC TO RETURN", fonts.TTFSmallFont, width/2, height-24, gray)
}
