package config

import (
	_ "embed"
)

//go:embed defaults/knight.yaml
var defaultKnightYAML []byte

// DefaultGameConfig returns the hard-coded default configuration.
// It mirrors defaults/knight.yaml and is used when the embedded file cannot
// be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			GroundY:        100,
			CutoffSpeed:    200,
			ViewportWidth:  1280,
			ViewportHeight: 720,
		},
		Player: PlayerConfig{
			StartX:            100,
			StartHealth:       3,
			JumpSpeed:         900,
			Gravity:           -2000,
			FastFallGravity:   -8000,
			GroundEpsilon:     0.1,
			InvincibilityTime: 1.0,
			FlashInterval:     0.1,
			MaxJumps:          2,
			AttackCooldown:    1.0,
			MoveSpeed:         200,
			MaxHealth:         5,
			SlashOffsetX:      50,
			SlashOffsetY:      50,
			FootHeight:        10,
		},
		Combat: CombatConfig{
			SlashSpeed:        1500,
			SlashDamage:       1,
			SlashCullMargin:   100,
			BlinkDuration:     0.2,
			RockFallSpeed:     350,
			RockDamage:        1,
			RockDropOffset:    20,
			RockCullMargin:    100,
			BatSightRange:     50,
			BatAttackCooldown: 2.0,
		},
		Spawners: SpawnersConfig{
			Skeleton: SpawnerConfig{
				Gate:        GateDistance,
				FirstAt:     400,
				StepMin:     300,
				StepMax:     800,
				Chance:      50,
				Lead:        100,
				Jitter:      200,
				AboveGround: true,
				CullMargin:  500,
				Speed:       -60,
				Weights: []Weight{
					{Kind: "standard", Weight: 34},
					{Kind: "light", Weight: 33},
					{Kind: "gray", Weight: 33},
				},
			},
			Bat: SpawnerConfig{
				Gate:       GateDistance,
				FirstAt:    400,
				StepMin:    300,
				StepMax:    800,
				Chance:     50,
				Lead:       100,
				Jitter:     200,
				BandMin:    500,
				BandMax:    650,
				CullMargin: 500,
				Speed:      -60,
				Weights: []Weight{
					{Kind: "black", Weight: 50},
					{Kind: "brown", Weight: 50},
				},
			},
			Coin: SpawnerConfig{
				Gate:        GateTimer,
				Interval:    2.0,
				Chance:      100,
				Lead:        150,
				Jitter:      200,
				BandMin:     40,
				BandMax:     300,
				AboveGround: true,
				CullMargin:  500,
				Weights: []Weight{
					{Kind: "ruby", Weight: 15},
					{Kind: "sapphire", Weight: 5},
				},
			},
			Heart: SpawnerConfig{
				Gate:        GateDistance,
				FirstAt:     1500,
				StepMin:     800,
				StepMax:     2000,
				Chance:      100,
				Lead:        150,
				Jitter:      300,
				BandMin:     40,
				BandMax:     320,
				AboveGround: true,
				CullMargin:  500,
			},
			PowerUp: SpawnerConfig{
				Gate:        GateDistance,
				FirstAt:     3000,
				StepMin:     800,
				StepMax:     2000,
				Chance:      5,
				Lead:        150,
				Jitter:      300,
				BandMin:     40,
				BandMax:     320,
				AboveGround: true,
				CullMargin:  500,
				Speed:       -50,
				Weights: []Weight{
					{Kind: "coin_rush", Weight: 60},
					{Kind: "swiftness", Weight: 20},
					{Kind: "frenzy", Weight: 20},
				},
			},
		},
		Platforms: PlatformsConfig{
			Lead:       300,
			Clearance:  50,
			CullMargin: 300,
			Patterns: []ChunkPattern{
				{Name: "stairs", Platforms: []PlatformSpec{
					{X: 0, Y: 240, Width: 120, Height: 16},
					{X: 180, Y: 340, Width: 120, Height: 16},
					{X: 380, Y: 460, Width: 120, Height: 16},
				}},
				{Name: "leapfrog", Platforms: []PlatformSpec{
					{X: 0, Y: 240, Width: 120, Height: 16},
					{X: 160, Y: 300, Width: 120, Height: 16},
					{X: 320, Y: 360, Width: 120, Height: 16},
					{X: 480, Y: 420, Width: 120, Height: 16},
					{X: 640, Y: 480, Width: 120, Height: 16},
				}},
				{Name: "widespread", Platforms: []PlatformSpec{
					{X: 0, Y: 240, Width: 120, Height: 16},
					{X: 250, Y: 320, Width: 120, Height: 16},
					{X: 600, Y: 380, Width: 120, Height: 16},
					{X: 850, Y: 440, Width: 120, Height: 16},
				}},
			},
		},
		PowerUps: PowerUpsConfig{
			CoinRush: CoinRushConfig{
				Duration:     10,
				Interval:     0.1,
				RubyRate:     15,
				SapphireRate: 5,
			},
			Swiftness: BoostConfig{Duration: 8, Factor: 1.5},
			Frenzy:    BoostConfig{Duration: 8, Factor: 0.5},
		},
		Upgrades: []UpgradeSpec{
			{Name: "Jump Count", MaxLevel: 3, BaseCost: 100, CostScale: 1.15, BaseValue: 1, ValueScale: 1, Increment: 1, Scaling: ScalingAdditive},
			{Name: "Attack Speed", MaxLevel: 10, BaseCost: 150, CostScale: 1.15, BaseValue: 0.25, ValueScale: 0.9, Scaling: ScalingMultiplicative},
			{Name: "Moving Speed", MaxLevel: 10, BaseCost: 150, CostScale: 1.15, BaseValue: 300, ValueScale: 1.1, Scaling: ScalingMultiplicative},
			{Name: "Max Health", MaxLevel: 10, BaseCost: 200, CostScale: 1.15, BaseValue: 3, ValueScale: 1, Increment: 1, Scaling: ScalingAdditive},
			{Name: "Coin Spawn Rate", MaxLevel: 10, BaseCost: 120, CostScale: 1.15, BaseValue: 2, ValueScale: 1.1, Scaling: ScalingMultiplicative},
			{Name: "Ruby Rate", MaxLevel: 50, BaseCost: 180, CostScale: 1.15, BaseValue: 15, ValueScale: 1.1, Scaling: ScalingMultiplicative},
			{Name: "Sapphire Rate", MaxLevel: 25, BaseCost: 180, CostScale: 1.15, BaseValue: 15, ValueScale: 1.1, Scaling: ScalingMultiplicative},
			{Name: "EXP Boost", MaxLevel: 5, BaseCost: 200, CostScale: 1.15, BaseValue: 1, ValueScale: 1.5, Scaling: ScalingMultiplicative},
		},
		Sprites: []SpriteSpec{
			{Name: "player", Width: 135, Height: 150, Glyph: "@", Color: "white"},
			{Name: "player_attack", Width: 135, Height: 150, Glyph: "&", Color: "yellow"},
			{Name: "skeleton", Width: 90, Height: 130, Glyph: "S", Color: "white"},
			{Name: "skeleton_light", Width: 80, Height: 120, Glyph: "s", Color: "cyan"},
			{Name: "skeleton_gray", Width: 100, Height: 140, Glyph: "S", Color: "gray"},
			{Name: "bat_black", Width: 80, Height: 50, Glyph: "w", Color: "magenta"},
			{Name: "bat_brown", Width: 90, Height: 55, Glyph: "W", Color: "red"},
			{Name: "rock", Width: 30, Height: 30, Glyph: "o", Color: "gray"},
			{Name: "fire_slash", Width: 80, Height: 40, Glyph: ")", Color: "orange"},
			{Name: "heart", Width: 40, Height: 36, Glyph: "♥", Color: "red"},
			{Name: "coin_gold", Width: 32, Height: 32, Glyph: "$", Color: "yellow"},
			{Name: "coin_ruby", Width: 32, Height: 32, Glyph: "$", Color: "red"},
			{Name: "coin_sapphire", Width: 32, Height: 32, Glyph: "$", Color: "blue"},
			{Name: "platform", Width: 120, Height: 16, Glyph: "=", Color: "green"},
			{Name: "coin_bonus", Width: 48, Height: 48, Glyph: "*", Color: "yellow"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ChanceBonus:     30,
			},
		},
	}
}
