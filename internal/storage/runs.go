package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/knight-run/internal/core"
)

// RunEntry is a finished run.
type RunEntry struct {
	ID         int64
	Profile    string
	Distance   int
	Coins      int
	XP         int
	Kills      int
	DurationMs int64
	CreatedAt  time.Time
}

// SaveRun records a finished run for a profile.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(profile string, run core.RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (profile, distance, coins, xp, kills, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		profile, run.Distance, run.Coins, run.XP, run.Kills, run.DurationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the longest runs of a profile, best first.
func (s *Store) TopRuns(profile string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, profile, distance, coins, xp, kills, duration_ms, created_at
		 FROM runs
		 WHERE profile = ?
		 ORDER BY distance DESC, id ASC
		 LIMIT ?`,
		profile, limit,
	)
}

// RecentRuns retrieves the latest runs of a profile, newest first.
func (s *Store) RecentRuns(profile string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, profile, distance, coins, xp, kills, duration_ms, created_at
		 FROM runs
		 WHERE profile = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		profile, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.Distance, &e.Coins, &e.XP, &e.Kills, &e.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestDistance returns the longest run distance of a profile.
// Returns 0 if no runs exist.
func (s *Store) BestDistance(profile string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(distance) FROM runs WHERE profile = ?",
		profile,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best distance: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// RunStats contains aggregated run statistics for a profile.
type RunStats struct {
	Profile     string
	Runs        int
	Best        int
	AvgDistance float64
	TotalCoins  int64
	LastPlayed  time.Time
}

// GetRunStats retrieves aggregated statistics for a profile.
func (s *Store) GetRunStats(profile string) (*RunStats, error) {
	stats := &RunStats{Profile: profile}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(distance), 0), COALESCE(AVG(distance), 0),
		        COALESCE(SUM(coins), 0), MAX(created_at)
		 FROM runs WHERE profile = ?`,
		profile,
	).Scan(&stats.Runs, &stats.Best, &stats.AvgDistance, &stats.TotalCoins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Recorder saves runs for one profile.
type Recorder struct {
	store   *Store
	profile string
}

// Recorder returns a run recorder bound to profile.
func (s *Store) Recorder(profile string) *Recorder {
	if profile == "" {
		profile = DefaultProfile
	}
	return &Recorder{store: s, profile: profile}
}

// RecordRun saves a finished run.
func (r *Recorder) RecordRun(run core.RunRecord) error {
	_, err := r.store.SaveRun(r.profile, run)
	return err
}
