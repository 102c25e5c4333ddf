package scenes

import (
	"github.com/cbodonnell/drizzle/client/objects"
	"github.com/cbodonnell/drizzle/pkg/repositories"
)

type ScoresScene struct {
	*BaseScene
}

var _ Scene = &ScoresScene{}

func NewScoresScene(records []*repositories.ScoreRecord) (Scene, error) {
	return &ScoresScene{
		BaseScene: NewBaseScene(objects.NewScoreboard("scoreboard", records)),
	}, nil
}
