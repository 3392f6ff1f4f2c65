// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains every tunable of the simulation.
// Only the shape of each formula is fixed in code; all constants live here.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Combat     CombatConfig     `yaml:"combat"`
	Spawners   SpawnersConfig   `yaml:"spawners"`
	Platforms  PlatformsConfig  `yaml:"platforms"`
	PowerUps   PowerUpsConfig   `yaml:"power_ups"`
	Upgrades   []UpgradeSpec    `yaml:"upgrades"`
	Sprites    []SpriteSpec     `yaml:"sprites"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the scrolling world frame.
type WorldConfig struct {
	GroundY        float64 `yaml:"ground_y"`
	CutoffSpeed    float64 `yaml:"cutoff_speed"` // World-left-edge advance per second
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
}

// PlayerConfig defines player physics and the fallback values used when an
// upgrade cannot be found by name.
type PlayerConfig struct {
	StartX            float64 `yaml:"start_x"`
	StartHealth       int     `yaml:"start_health"`
	JumpSpeed         float64 `yaml:"jump_speed"`
	Gravity           float64 `yaml:"gravity"`
	FastFallGravity   float64 `yaml:"fast_fall_gravity"`
	GroundEpsilon     float64 `yaml:"ground_epsilon"`
	InvincibilityTime float64 `yaml:"invincibility_time"`
	FlashInterval     float64 `yaml:"flash_interval"`
	MaxJumps          int     `yaml:"max_jumps"`
	AttackCooldown    float64 `yaml:"attack_cooldown"`
	MoveSpeed         float64 `yaml:"move_speed"`
	MaxHealth         int     `yaml:"max_health"`
	SlashOffsetX      float64 `yaml:"slash_offset_x"`
	SlashOffsetY      float64 `yaml:"slash_offset_y"`
	FootHeight        float64 `yaml:"foot_height"` // Landing band below a platform top
}

// CombatConfig defines projectile, hazard and enemy behaviour parameters.
type CombatConfig struct {
	SlashSpeed        float64 `yaml:"slash_speed"`
	SlashDamage       int     `yaml:"slash_damage"`
	SlashCullMargin   float64 `yaml:"slash_cull_margin"` // Beyond camera right edge
	BlinkDuration     float64 `yaml:"blink_duration"`
	RockFallSpeed     float64 `yaml:"rock_fall_speed"`
	RockDamage        int     `yaml:"rock_damage"`
	RockDropOffset    float64 `yaml:"rock_drop_offset"`
	RockCullMargin    float64 `yaml:"rock_cull_margin"` // Behind world left edge
	BatSightRange     float64 `yaml:"bat_sight_range"`
	BatAttackCooldown float64 `yaml:"bat_attack_cooldown"`
}

// Gate names for SpawnerConfig.Gate.
const (
	GateDistance = "distance"
	GateTimer    = "timer"
)

// SpawnerConfig parameterizes one generic spawner instance.
type SpawnerConfig struct {
	Gate        string   `yaml:"gate"`         // "distance" or "timer"
	FirstAt     float64  `yaml:"first_at"`     // Initial distance threshold
	StepMin     float64  `yaml:"step_min"`     // Threshold advance lower bound
	StepMax     float64  `yaml:"step_max"`     // Threshold advance upper bound (exclusive)
	Interval    float64  `yaml:"interval"`     // Timer gate interval in seconds
	Chance      float64  `yaml:"chance"`       // Spawn chance percentage (100 = always)
	Lead        float64  `yaml:"lead"`         // Distance beyond camera right edge
	Jitter      float64  `yaml:"jitter"`       // Random extra x offset
	BandMin     float64  `yaml:"band_min"`     // Vertical spawn band
	BandMax     float64  `yaml:"band_max"`     //
	AboveGround bool     `yaml:"above_ground"` // Band is relative to ground level
	CullMargin  float64  `yaml:"cull_margin"`  // Removed once x < worldLeftEdge - margin
	Speed       float64  `yaml:"speed"`        // Horizontal velocity of spawned entities
	Weights     []Weight `yaml:"weights"`      // Type-selection table (percentages)
}

// Weight is one entry of a type-selection table.
type Weight struct {
	Kind   string  `yaml:"kind"`
	Weight float64 `yaml:"weight"`
}

// SpawnersConfig groups the per-kind spawner configurations.
type SpawnersConfig struct {
	Skeleton SpawnerConfig `yaml:"skeleton"`
	Bat      SpawnerConfig `yaml:"bat"`
	Coin     SpawnerConfig `yaml:"coin"`
	Heart    SpawnerConfig `yaml:"heart"`
	PowerUp  SpawnerConfig `yaml:"power_up"`
}

// PlatformsConfig defines the chunk spawner.
type PlatformsConfig struct {
	Lead       float64        `yaml:"lead"`        // Minimum distance beyond camera right edge
	Clearance  float64        `yaml:"clearance"`   // Extra height above ground platform
	CullMargin float64        `yaml:"cull_margin"` // Removed once right edge < worldLeftEdge - margin
	Patterns   []ChunkPattern `yaml:"patterns"`
}

// ChunkPattern is a pre-authored relative layout of platforms.
type ChunkPattern struct {
	Name      string         `yaml:"name"`
	Platforms []PlatformSpec `yaml:"platforms"`
}

// PlatformSpec is one platform inside a chunk, relative to the chunk origin.
type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PowerUpsConfig defines the timed effects.
type PowerUpsConfig struct {
	CoinRush  CoinRushConfig `yaml:"coin_rush"`
	Swiftness BoostConfig    `yaml:"swiftness"`
	Frenzy    BoostConfig    `yaml:"frenzy"`
}

// CoinRushConfig overrides coin spawning for a while.
type CoinRushConfig struct {
	Duration     float64 `yaml:"duration"`
	Interval     float64 `yaml:"interval"`
	RubyRate     float64 `yaml:"ruby_rate"`
	SapphireRate float64 `yaml:"sapphire_rate"`
}

// BoostConfig multiplies one player tunable for a while.
type BoostConfig struct {
	Duration float64 `yaml:"duration"`
	Factor   float64 `yaml:"factor"`
}

// Scaling mode names for UpgradeSpec.Scaling.
const (
	ScalingAdditive       = "additive"
	ScalingMultiplicative = "multiplicative"
)

// UpgradeSpec defines the growth curve of one upgrade.
type UpgradeSpec struct {
	Name       string  `yaml:"name"`
	MaxLevel   int     `yaml:"max_level"`
	BaseCost   int     `yaml:"base_cost"`
	CostScale  float64 `yaml:"cost_scale"`
	BaseValue  float64 `yaml:"base_value"`
	ValueScale float64 `yaml:"value_scale"`
	Increment  float64 `yaml:"increment"`
	Scaling    string  `yaml:"scaling"` // "additive" or "multiplicative"
}

// SpriteSpec defines the collision size and terminal look of a sprite kind.
type SpriteSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
}

// Validate checks the configuration for contract breaches that would make
// the simulation misbehave.
func (c GameConfig) Validate() error {
	var errs []error

	if c.World.CutoffSpeed < 0 {
		errs = append(errs, fmt.Errorf("world.cutoff_speed must be >= 0, got %v", c.World.CutoffSpeed))
	}
	if c.World.ViewportWidth <= 0 || c.World.ViewportHeight <= 0 {
		errs = append(errs, errors.New("world viewport must be positive"))
	}
	if c.Player.FlashInterval <= 0 {
		errs = append(errs, errors.New("player.flash_interval must be positive"))
	}

	spawners := map[string]SpawnerConfig{
		"skeleton": c.Spawners.Skeleton,
		"bat":      c.Spawners.Bat,
		"coin":     c.Spawners.Coin,
		"heart":    c.Spawners.Heart,
		"power_up": c.Spawners.PowerUp,
	}
	for name, s := range spawners {
		switch s.Gate {
		case GateDistance:
			if s.StepMax < s.StepMin {
				errs = append(errs, fmt.Errorf("spawners.%s: step_max < step_min", name))
			}
		case GateTimer:
			if s.Interval <= 0 {
				errs = append(errs, fmt.Errorf("spawners.%s: interval must be positive", name))
			}
		default:
			errs = append(errs, fmt.Errorf("spawners.%s: unknown gate %q", name, s.Gate))
		}
		if s.BandMax < s.BandMin {
			errs = append(errs, fmt.Errorf("spawners.%s: band_max < band_min", name))
		}
	}

	if len(c.Platforms.Patterns) == 0 {
		errs = append(errs, errors.New("platforms.patterns must not be empty"))
	}
	for _, p := range c.Platforms.Patterns {
		if len(p.Platforms) == 0 {
			errs = append(errs, fmt.Errorf("platforms pattern %q has no platforms", p.Name))
		}
	}

	seen := make(map[string]bool, len(c.Upgrades))
	for _, u := range c.Upgrades {
		if seen[u.Name] {
			errs = append(errs, fmt.Errorf("upgrade %q defined twice", u.Name))
		}
		seen[u.Name] = true
		if u.MaxLevel < 1 {
			errs = append(errs, fmt.Errorf("upgrade %q: max_level must be >= 1", u.Name))
		}
		if u.Scaling != ScalingAdditive && u.Scaling != ScalingMultiplicative {
			errs = append(errs, fmt.Errorf("upgrade %q: unknown scaling %q", u.Name, u.Scaling))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
