// Package powerup implements timed power-up effects as pure transformations
// of the gameplay tuning, plus the pickups that grant them.
package powerup

import (
	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/sprite"
)

// Kind identifies a power-up effect.
type Kind uint8

const (
	CoinRush  Kind = iota // Fast coin spawning with boosted rare tiers
	Swiftness             // Faster movement
	Frenzy                // Shorter attack cooldown
	KindCount             // Sentinel for counting kinds
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case CoinRush:
		return "coin_rush"
	case Swiftness:
		return "swiftness"
	case Frenzy:
		return "frenzy"
	default:
		return "?"
	}
}

// Label returns a short HUD label.
func (k Kind) Label() string {
	switch k {
	case CoinRush:
		return "Coin Rush"
	case Swiftness:
		return "Swift"
	case Frenzy:
		return "Frenzy"
	default:
		return "?"
	}
}

// Glyph returns the display character of the pickup.
func (k Kind) Glyph() rune {
	switch k {
	case CoinRush:
		return '*'
	case Swiftness:
		return '>'
	case Frenzy:
		return '!'
	default:
		return '?'
	}
}

// ParseKind maps a config name to a Kind.
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < KindCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Tuning is the set of gameplay parameters power-ups may change.
// The session derives it from upgrades and copies it into the player and
// the coin spawner.
type Tuning struct {
	CoinInterval   float64 // Seconds between coin spawns
	RubyRate       float64 // Ruby weight percentage
	SapphireRate   float64 // Sapphire weight percentage
	MoveSpeed      float64
	AttackCooldown float64
}

// Delta records the tuning fields an effect replaced, so it can be undone.
type Delta struct {
	Kind Kind
	Prev Tuning
}

// Apply returns the tuning with the effect of kind applied, and the delta
// that reverts it.
func Apply(kind Kind, cfg config.PowerUpsConfig, t Tuning) (Tuning, Delta) {
	d := Delta{Kind: kind, Prev: t}
	switch kind {
	case CoinRush:
		t.CoinInterval = cfg.CoinRush.Interval
		t.RubyRate = cfg.CoinRush.RubyRate
		t.SapphireRate = cfg.CoinRush.SapphireRate
	case Swiftness:
		t.MoveSpeed *= cfg.Swiftness.Factor
	case Frenzy:
		t.AttackCooldown *= cfg.Frenzy.Factor
	}
	return t, d
}

// Revert restores the fields touched by d's kind. Fields owned by other
// kinds are left alone, so effects may expire in any order.
func Revert(t Tuning, d Delta) Tuning {
	switch d.Kind {
	case CoinRush:
		t.CoinInterval = d.Prev.CoinInterval
		t.RubyRate = d.Prev.RubyRate
		t.SapphireRate = d.Prev.SapphireRate
	case Swiftness:
		t.MoveSpeed = d.Prev.MoveSpeed
	case Frenzy:
		t.AttackCooldown = d.Prev.AttackCooldown
	}
	return t
}

// Duration returns how long an effect of kind lasts.
func Duration(kind Kind, cfg config.PowerUpsConfig) float64 {
	switch kind {
	case CoinRush:
		return cfg.CoinRush.Duration
	case Swiftness:
		return cfg.Swiftness.Duration
	case Frenzy:
		return cfg.Frenzy.Duration
	default:
		return 0
	}
}

// Pickup is a power-up drifting through the world.
type Pickup struct {
	X, Y float64
	VX   float64
	Kind Kind
}

// Bounds returns the collision box.
func (p *Pickup) Bounds(sizes sprite.Provider) core.Rect {
	w, h := sizes.Size(sprite.CoinBonus)
	return core.NewRect(p.X, p.Y, w, h)
}
