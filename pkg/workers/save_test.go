package workers

import (
	"context"
	"testing"
	"time"

	"github.com/cbodonnell/drizzle/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveScoreWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := repositories.NewInMemoryRepository()
	saveScoreChan := make(chan SaveScoreRequest, 1)
	worker := NewSaveScoreWorker(NewSaveScoreWorkerOptions{
		Repository:    repo,
		SaveScoreChan: saveScoreChan,
	})
	go worker.Start(ctx)

	saveScoreChan <- SaveScoreRequest{
		Record: &repositories.ScoreRecord{
			Score:       230,
			DropsCaught: 21,
			DropsMissed: 4,
			Duration:    62.5,
		},
	}

	require.Eventually(t, func() bool {
		high, err := repo.HighScore(ctx)
		return err == nil && high == 230
	}, time.Second, 10*time.Millisecond)

	top, err := repo.TopScores(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 21, top[0].DropsCaught)
}
