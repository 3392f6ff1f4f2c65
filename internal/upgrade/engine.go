package upgrade

import (
	"fmt"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
)

// LevelKeyPrefix prefixes the persisted level of every upgrade.
const LevelKeyPrefix = "upgrade_level_"

// LevelKey returns the store key holding the level of the named upgrade.
func LevelKey(name string) string {
	return LevelKeyPrefix + name
}

// Engine owns the upgrade list for the process lifetime.
type Engine struct {
	upgrades []*Upgrade
	byName   map[string]*Upgrade
}

// NewEngine creates every upgrade at level 1, in configuration order.
// Duplicate names keep the first entry.
func NewEngine(specs []config.UpgradeSpec) *Engine {
	e := &Engine{
		upgrades: make([]*Upgrade, 0, len(specs)),
		byName:   make(map[string]*Upgrade, len(specs)),
	}
	for _, s := range specs {
		if _, dup := e.byName[s.Name]; dup {
			continue
		}
		u := New(s)
		e.upgrades = append(e.upgrades, u)
		e.byName[u.Name] = u
	}
	return e
}

// Get returns the named upgrade.
func (e *Engine) Get(name string) (*Upgrade, bool) {
	u, ok := e.byName[name]
	return u, ok
}

// ValueOr returns the current value of the named upgrade, or def when no
// such upgrade exists.
func (e *Engine) ValueOr(name string, def float64) float64 {
	if u, ok := e.byName[name]; ok {
		return u.Value()
	}
	return def
}

// All returns the upgrades in display order.
func (e *Engine) All() []*Upgrade {
	return e.upgrades
}

// Levels returns a name to level map, mainly for logging.
func (e *Engine) Levels() map[string]int {
	levels := make(map[string]int, len(e.upgrades))
	for _, u := range e.upgrades {
		levels[u.Name] = u.Level()
	}
	return levels
}

// Save writes every level to the store and flushes it.
func (e *Engine) Save(p core.Prefs) error {
	for _, u := range e.upgrades {
		p.PutInt(LevelKey(u.Name), u.Level())
	}
	if err := p.Flush(); err != nil {
		return fmt.Errorf("upgrade: save levels: %w", err)
	}
	return nil
}

// Load reads every level back, keeping the in-memory level for absent keys.
// Cost and value are recomputed from the level.
func (e *Engine) Load(p core.Prefs) {
	for _, u := range e.upgrades {
		u.SetLevel(p.GetInt(LevelKey(u.Name), u.Level()))
	}
}

// HasSaved reports whether the store holds any upgrade level.
func (e *Engine) HasSaved(p core.Prefs) bool {
	for _, u := range e.upgrades {
		if p.Contains(LevelKey(u.Name)) {
			return true
		}
	}
	return false
}

// Init seeds the store with level 1 on first run, or loads saved levels.
func (e *Engine) Init(p core.Prefs) error {
	if !e.HasSaved(p) {
		return e.Save(p)
	}
	e.Load(p)
	return nil
}

// ResetToLevelOne sets every upgrade back to level 1 and saves.
func (e *Engine) ResetToLevelOne(p core.Prefs) error {
	for _, u := range e.upgrades {
		u.SetLevel(1)
	}
	return e.Save(p)
}
