package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// GameResult is the outcome of one finished session.
type GameResult struct {
	ID        int64
	Mode      string
	Theme     string
	Won       bool
	Score     int
	Collected int
	Target    int
	MovesUsed int
	MoveLimit int
	Width     int
	Height    int
	CreatedAt time.Time
}

// ResultStats contains aggregated statistics for a mode.
type ResultStats struct {
	Mode       string
	Games      int
	Wins       int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// WinRate returns the share of games won, 0 if none were played.
func (r ResultStats) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// SaveResult records a finished game and its score in one transaction.
// Returns the ID of the result record.
func (s *Store) SaveResult(r GameResult) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	res, err := tx.Exec(
		`INSERT INTO results
		 (mode, theme, won, score, collected, target, moves_used, move_limit, width, height)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.Theme, boolToInt(r.Won), r.Score, r.Collected, r.Target,
		r.MovesUsed, r.MoveLimit, r.Width, r.Height,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO scores (mode, score) VALUES (?, ?)", r.Mode, r.Score); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
// An empty mode matches every mode.
func (s *Store) RecentResults(mode string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, theme, won, score, collected, target, moves_used, move_limit, width, height, created_at
		 FROM results
		 WHERE ? = '' OR mode = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var won int
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Mode,
			&r.Theme,
			&won,
			&r.Score,
			&r.Collected,
			&r.Target,
			&r.MovesUsed,
			&r.MoveLimit,
			&r.Width,
			&r.Height,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats retrieves aggregated statistics for a mode.
func (s *Store) Stats(mode string) (*ResultStats, error) {
	stats := &ResultStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM results WHERE mode = ?`,
		mode,
	).Scan(&stats.Games, &stats.Wins, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE mode = ? ORDER BY id DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
