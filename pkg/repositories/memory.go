package repositories

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository keeps scores for the lifetime of the process. It
// is used when score persistence is turned off.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	scores []*ScoreRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) SaveScore(ctx context.Context, record *ScoreRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	r.nextID++
	record.ID = r.nextID

	stored := *record
	r.scores = append(r.scores, &stored)

	return record.ID, nil
}

func (r *InMemoryRepository) HighScore(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.scores) == 0 {
		return 0, &ErrNotFound{}
	}
	high := 0
	for _, record := range r.scores {
		if record.Score > high {
			high = record.Score
		}
	}

	return high, nil
}

func (r *InMemoryRepository) TopScores(ctx context.Context, limit int) ([]*ScoreRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*ScoreRecord, len(r.scores))
	for i, record := range r.scores {
		stored := *record
		records[i] = &stored
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}
