package repositories

import "time"

// ScoreRecord is one finished run.
type ScoreRecord struct {
	ID          int64
	Score       int
	DropsCaught int
	DropsMissed int
	// Duration is the run length in seconds.
	Duration  float64
	CreatedAt time.Time
}

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}
