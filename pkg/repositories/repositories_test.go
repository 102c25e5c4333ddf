package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepositories returns every Repository implementation under a
// name, so the same behavior is checked against all of them.
func newTestRepositories(t *testing.T) map[string]Repository {
	t.Helper()
	ctx := context.Background()

	sqlite, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlite.Close(ctx)
	})

	return map[string]Repository{
		"memory": NewInMemoryRepository(),
		"sqlite": sqlite,
	}
}

func TestRepository_HighScoreEmpty(t *testing.T) {
	ctx := context.Background()
	for name, repo := range newTestRepositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.HighScore(ctx)
			require.Error(t, err)
			assert.True(t, IsNotFound(err))
		})
	}
}

func TestRepository_SaveAndQuery(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for name, repo := range newTestRepositories(t) {
		t.Run(name, func(t *testing.T) {
			records := []*ScoreRecord{
				{Score: 120, DropsCaught: 12, DropsMissed: 3, Duration: 45.5, CreatedAt: base},
				{Score: 340, DropsCaught: 30, DropsMissed: 1, Duration: 98.0, CreatedAt: base.Add(time.Hour)},
				{Score: 120, DropsCaught: 11, DropsMissed: 4, Duration: 44.0, CreatedAt: base.Add(2 * time.Hour)},
			}
			for _, record := range records {
				id, err := repo.SaveScore(ctx, record)
				require.NoError(t, err)
				assert.Greater(t, id, int64(0))
				assert.Equal(t, id, record.ID)
			}

			high, err := repo.HighScore(ctx)
			require.NoError(t, err)
			assert.Equal(t, 340, high)

			top, err := repo.TopScores(ctx, 10)
			require.NoError(t, err)
			require.Len(t, top, 3)
			assert.Equal(t, 340, top[0].Score)
			assert.Equal(t, 120, top[1].Score)
			assert.Equal(t, 120, top[2].Score)
			assert.Equal(t, 12, top[1].DropsCaught, "ties break by save time")
			assert.Equal(t, 11, top[2].DropsCaught)

			limited, err := repo.TopScores(ctx, 2)
			require.NoError(t, err)
			assert.Len(t, limited, 2)
		})
	}
}
