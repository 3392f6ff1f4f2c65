package session

import (
	"fmt"

	"github.com/vovakirdan/knight-run/internal/core"
)

// Persisted keys.
const (
	KeyCoins      = "coinCount"
	KeyXP         = "xp"
	KeyDeaths     = "totalDeaths"
	KeyTotalCoins = "totalCoins"
	KeyKills      = "totalKills"
	KeyPlaytimeMs = "totalPlaytimeMs"
)

// Stats are the lifetime statistics of a profile.
type Stats struct {
	Deaths     int
	Coins      int
	Kills      int
	PlaytimeMs int
}

// Wallet holds the balances carried between runs.
type Wallet struct {
	Coins int
	XP    int
}

// LoadWallet reads the balances, defaulting to zero.
func LoadWallet(p core.Prefs) Wallet {
	return Wallet{
		Coins: p.GetInt(KeyCoins, 0),
		XP:    p.GetInt(KeyXP, 0),
	}
}

// Save writes the balances without flushing.
func (w Wallet) Save(p core.Prefs) {
	p.PutInt(KeyCoins, w.Coins)
	p.PutInt(KeyXP, w.XP)
}

// LoadStats reads the lifetime statistics.
func LoadStats(p core.Prefs) Stats {
	return Stats{
		Deaths:     p.GetInt(KeyDeaths, 0),
		Coins:      p.GetInt(KeyTotalCoins, 0),
		Kills:      p.GetInt(KeyKills, 0),
		PlaytimeMs: p.GetInt(KeyPlaytimeMs, 0),
	}
}

// Record adds a finished run to the statistics and flushes them.
func (s *Stats) Record(p core.Prefs, run core.RunRecord) error {
	s.Deaths++
	s.Coins += run.Coins
	s.Kills += run.Kills
	s.PlaytimeMs += int(run.DurationMs)

	p.PutInt(KeyDeaths, s.Deaths)
	p.PutInt(KeyTotalCoins, s.Coins)
	p.PutInt(KeyKills, s.Kills)
	p.PutInt(KeyPlaytimeMs, s.PlaytimeMs)
	if err := p.Flush(); err != nil {
		return fmt.Errorf("session: save stats: %w", err)
	}
	return nil
}
