// Package upgrade implements persistent run-over-run upgrades: growth
// curves for cost and value, and an engine that looks them up by name and
// round-trips their levels through a key/value store.
package upgrade

import (
	"math"

	"github.com/vovakirdan/knight-run/internal/config"
)

// Upgrade names wired into gameplay.
const (
	JumpCount     = "Jump Count"
	AttackSpeed   = "Attack Speed"
	MovingSpeed   = "Moving Speed"
	MaxHealth     = "Max Health"
	CoinSpawnRate = "Coin Spawn Rate"
	RubyRate      = "Ruby Rate"
	SapphireRate  = "Sapphire Rate"
	EXPBoost      = "EXP Boost"
)

// Scaling selects how the value grows with level.
type Scaling uint8

const (
	Additive       Scaling = iota // base + increment*(level-1)
	Multiplicative                // base * scale^(level-1)
)

// String returns the config name of the scaling mode.
func (s Scaling) String() string {
	if s == Multiplicative {
		return config.ScalingMultiplicative
	}
	return config.ScalingAdditive
}

// Upgrade is one purchasable upgrade.
// Cost and value are pure functions of the level and the growth curve.
type Upgrade struct {
	Name       string
	MaxLevel   int
	BaseCost   int
	CostScale  float64
	BaseValue  float64
	ValueScale float64
	Increment  float64
	Scaling    Scaling

	level int
	cost  int
	value float64
}

// New creates an upgrade at level 1.
func New(spec config.UpgradeSpec) *Upgrade {
	scaling := Additive
	if spec.Scaling == config.ScalingMultiplicative {
		scaling = Multiplicative
	}
	u := &Upgrade{
		Name:       spec.Name,
		MaxLevel:   spec.MaxLevel,
		BaseCost:   spec.BaseCost,
		CostScale:  spec.CostScale,
		BaseValue:  spec.BaseValue,
		ValueScale: spec.ValueScale,
		Increment:  spec.Increment,
		Scaling:    scaling,
	}
	if u.MaxLevel < 1 {
		u.MaxLevel = 1
	}
	u.SetLevel(1)
	return u
}

// Level returns the current level in [1, MaxLevel].
func (u *Upgrade) Level() int { return u.level }

// Cost returns the price of the next level.
func (u *Upgrade) Cost() int { return u.cost }

// Value returns the gameplay value at the current level.
func (u *Upgrade) Value() float64 { return u.value }

// CanUpgrade reports whether another level can be bought.
func (u *Upgrade) CanUpgrade() bool {
	return u.level < u.MaxLevel
}

// Upgrade raises the level by one. It is a no-op at MaxLevel.
func (u *Upgrade) Upgrade() bool {
	if !u.CanUpgrade() {
		return false
	}
	u.SetLevel(u.level + 1)
	return true
}

// SetLevel sets the level, clamped to [1, MaxLevel], and recomputes cost
// and value.
func (u *Upgrade) SetLevel(level int) {
	if level < 1 {
		level = 1
	}
	if level > u.MaxLevel {
		level = u.MaxLevel
	}
	u.level = level
	u.refresh()
}

func (u *Upgrade) refresh() {
	steps := float64(u.level - 1)
	u.cost = int(float64(u.BaseCost) * math.Pow(u.CostScale, steps))
	switch u.Scaling {
	case Multiplicative:
		u.value = u.BaseValue * math.Pow(u.ValueScale, steps)
	default:
		u.value = u.BaseValue + u.Increment*steps
	}
}
