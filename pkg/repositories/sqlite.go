package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS scores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	score INTEGER NOT NULL,
	drops_caught INTEGER NOT NULL,
	drops_missed INTEGER NOT NULL,
	duration REAL NOT NULL,
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scores_score ON scores (score DESC);
`

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveScore(ctx context.Context, record *ScoreRecord) (int64, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	q := `
	INSERT INTO scores (score, drops_caught, drops_missed, duration, created_at)
	VALUES (?, ?, ?, ?, ?);
	`
	result, err := r.db.ExecContext(ctx, q, record.Score, record.DropsCaught, record.DropsMissed, record.Duration, record.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert score: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted score id: %v", err)
	}
	record.ID = id

	return id, nil
}

func (r *SQLiteRepository) HighScore(ctx context.Context) (int, error) {
	q := `
	SELECT MAX(score) FROM scores;
	`
	var high sql.NullInt64
	if err := r.db.QueryRowContext(ctx, q).Scan(&high); err != nil {
		return 0, fmt.Errorf("failed to query high score: %v", err)
	}
	if !high.Valid {
		return 0, &ErrNotFound{}
	}

	return int(high.Int64), nil
}

func (r *SQLiteRepository) TopScores(ctx context.Context, limit int) ([]*ScoreRecord, error) {
	q := `
	SELECT id, score, drops_caught, drops_missed, duration, created_at
	FROM scores
	ORDER BY score DESC, created_at ASC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top scores: %v", err)
	}
	defer rows.Close()

	var records []*ScoreRecord
	for rows.Next() {
		record := &ScoreRecord{}
		if err := rows.Scan(&record.ID, &record.Score, &record.DropsCaught, &record.DropsMissed, &record.Duration, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score: %v", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %v", err)
	}

	return records, nil
}
