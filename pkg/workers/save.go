package workers

import (
	"context"

	"github.com/cbodonnell/drizzle/pkg/log"
	"github.com/cbodonnell/drizzle/pkg/repositories"
)

type SaveScoreWorker struct {
	repository    repositories.Repository
	saveScoreChan <-chan SaveScoreRequest
}

type NewSaveScoreWorkerOptions struct {
	Repository    repositories.Repository
	SaveScoreChan <-chan SaveScoreRequest
}

type SaveScoreRequest struct {
	Record *repositories.ScoreRecord
}

// NewSaveScoreWorker creates a new SaveScoreWorker.
// The worker processes save requests from the game loop so that
// repository writes never block a frame.
func NewSaveScoreWorker(opts NewSaveScoreWorkerOptions) *SaveScoreWorker {
	return &SaveScoreWorker{
		repository:    opts.Repository,
		saveScoreChan: opts.SaveScoreChan,
	}
}

func (w *SaveScoreWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case saveRequest := <-w.saveScoreChan:
			w.saveScore(ctx, saveRequest)
		}
	}
}

func (w *SaveScoreWorker) saveScore(ctx context.Context, saveRequest SaveScoreRequest) {
	if saveRequest.Record == nil {
		return
	}
	if _, err := w.repository.SaveScore(ctx, saveRequest.Record); err != nil {
		log.Error("Failed to save score: %v", err)
	}
}
