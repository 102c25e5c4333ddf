package repositories

import (
	"context"
)

// Repository stores finished run scores. The game core never touches
// it; the client shell saves scores when a run ends and reads the high
// score when one starts.
type Repository interface {
	Close(ctx context.Context) error
	// SaveScore persists a finished run and returns its id.
	SaveScore(ctx context.Context, record *ScoreRecord) (int64, error)
	// HighScore returns the best score ever saved. Returns ErrNotFound
	// when no scores have been saved yet.
	HighScore(ctx context.Context) (int, error)
	// TopScores returns up to limit records ordered best first.
	TopScores(ctx context.Context, limit int) ([]*ScoreRecord, error)
}
