package storage

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/knight-run/internal/core"
)

// Prefs is the key/value store of one profile. Reads are served from a
// cache loaded at open; writes are buffered until Flush, which commits them
// in a single transaction.
type Prefs struct {
	store   *Store
	profile string

	mu     sync.Mutex
	values map[string]int
	dirty  map[string]int
}

var _ core.Prefs = (*Prefs)(nil)

// Prefs opens the preferences of a profile.
func (s *Store) Prefs(profile string) (*Prefs, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	rows, err := s.db.Query("SELECT key, value FROM prefs WHERE profile = ?", profile)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query prefs: %w", err)
	}
	defer rows.Close()

	values := make(map[string]int)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &Prefs{
		store:   s,
		profile: profile,
		values:  values,
		dirty:   make(map[string]int),
	}, nil
}

// Profile returns the profile name.
func (p *Prefs) Profile() string {
	return p.profile
}

// GetInt returns the stored value or def when the key is absent.
func (p *Prefs) GetInt(key string, def int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

// PutInt buffers a value until the next Flush.
func (p *Prefs) PutInt(key string, value int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
	p.dirty[key] = value
}

// Contains reports whether key has a value, flushed or not.
func (p *Prefs) Contains(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.values[key]
	return ok
}

// Pending returns the number of buffered writes.
func (p *Prefs) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.dirty)
}

// Flush writes the buffered values. On error they stay buffered for the
// next attempt.
func (p *Prefs) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.dirty) == 0 {
		return nil
	}

	tx, err := p.store.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO prefs (profile, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare flush: %w", err)
	}
	defer stmt.Close()

	for key, value := range p.dirty {
		if _, err := stmt.Exec(p.profile, key, value); err != nil {
			return fmt.Errorf("storage: cannot save %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit prefs: %w", err)
	}

	clear(p.dirty)
	return nil
}
