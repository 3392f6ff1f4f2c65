package spawn

import (
	"math/rand"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/entity"
	"github.com/vovakirdan/knight-run/internal/powerup"
)

// Marker is the kind of single-variant entities such as hearts.
type Marker struct{}

// Set is every spawner of a session.
type Set struct {
	Skeletons *Spawner[entity.Enemy, entity.EnemyKind]
	Bats      *Spawner[entity.Enemy, entity.EnemyKind]
	Coins     *Spawner[entity.Coin, entity.CoinKind]
	Hearts    *Spawner[entity.Heart, Marker]
	PowerUps  *Spawner[powerup.Pickup, powerup.Kind]
	Platforms *ChunkSpawner
}

// NewSet builds the spawners from the configuration.
// groundPlatformHeight is the platform sprite height.
func NewSet(cfg config.GameConfig, groundPlatformHeight float64, rng *rand.Rand) *Set {
	sc := cfg.Spawners
	enemyX := func(e *entity.Enemy) float64 { return e.X }

	return &Set{
		Skeletons: New[entity.Enemy, entity.EnemyKind](sc.Skeleton, EnemyTable(entity.FamilySkeleton, sc.Skeleton.Weights), rng,
			enemyBuilder(sc.Skeleton.Speed), enemyX),
		Bats: New[entity.Enemy, entity.EnemyKind](sc.Bat, EnemyTable(entity.FamilyBat, sc.Bat.Weights), rng,
			enemyBuilder(sc.Bat.Speed), enemyX),
		Coins: New[entity.Coin, entity.CoinKind](sc.Coin, CoinTableFromWeights(sc.Coin.Weights), rng,
			func(k entity.CoinKind, x, y float64) *entity.Coin {
				return &entity.Coin{X: x, Y: y, Kind: k}
			},
			func(c *entity.Coin) float64 { return c.X }),
		Hearts: New[entity.Heart, Marker](sc.Heart, NewTable(Entry[Marker]{Weight: 100}), rng,
			func(_ Marker, x, y float64) *entity.Heart {
				return &entity.Heart{X: x, Y: y}
			},
			func(h *entity.Heart) float64 { return h.X }),
		PowerUps: New[powerup.Pickup, powerup.Kind](sc.PowerUp, PowerUpTable(sc.PowerUp.Weights), rng,
			func(k powerup.Kind, x, y float64) *powerup.Pickup {
				return &powerup.Pickup{X: x, Y: y, VX: sc.PowerUp.Speed, Kind: k}
			},
			func(p *powerup.Pickup) float64 { return p.X }),
		Platforms: NewChunkSpawner(cfg.Platforms, cfg.World.GroundY, groundPlatformHeight, rng),
	}
}

// Reset clears every spawner.
func (s *Set) Reset() {
	s.Skeletons.Reset()
	s.Bats.Reset()
	s.Coins.Reset()
	s.Hearts.Reset()
	s.PowerUps.Reset()
	s.Platforms.Reset()
}

func enemyBuilder(speed float64) BuildFunc[entity.Enemy, entity.EnemyKind] {
	return func(k entity.EnemyKind, x, y float64) *entity.Enemy {
		return entity.NewEnemy(k, x, y, speed)
	}
}

// EnemyTable builds the type table of an enemy family from named weights.
// Unknown names are skipped; an empty result gives every kind of the
// family an equal share.
func EnemyTable(f entity.Family, weights []config.Weight) Table[entity.EnemyKind] {
	var entries []Entry[entity.EnemyKind]
	for _, w := range weights {
		if k, ok := entity.ParseEnemyKind(f, w.Kind); ok {
			entries = append(entries, Entry[entity.EnemyKind]{Kind: k, Weight: w.Weight})
		}
	}
	if len(entries) == 0 {
		kinds := entity.EnemyKindsOf(f)
		for _, k := range kinds {
			entries = append(entries, Entry[entity.EnemyKind]{Kind: k, Weight: 100 / float64(len(kinds))})
		}
	}
	return NewTable(entries...)
}

// CoinRates returns the clamped tier percentages. Rare tiers are taken as
// configured up to 100 in total and gold absorbs the remainder, so the
// three always sum to 100.
func CoinRates(ruby, sapphire float64) (gold, r, s float64) {
	r = core.ClampF(ruby, 0, 100)
	s = core.ClampF(sapphire, 0, 100-r)
	return 100 - r - s, r, s
}

// CoinTable builds the three-tier coin table in gold, ruby, sapphire order.
func CoinTable(ruby, sapphire float64) Table[entity.CoinKind] {
	gold, r, s := CoinRates(ruby, sapphire)
	return NewTable(
		Entry[entity.CoinKind]{Kind: entity.CoinGold, Weight: gold},
		Entry[entity.CoinKind]{Kind: entity.CoinRuby, Weight: r},
		Entry[entity.CoinKind]{Kind: entity.CoinSapphire, Weight: s},
	)
}

// CoinTableFromWeights reads the ruby and sapphire rates from named weights.
func CoinTableFromWeights(weights []config.Weight) Table[entity.CoinKind] {
	var ruby, sapphire float64
	for _, w := range weights {
		switch w.Kind {
		case entity.CoinRuby.String():
			ruby = w.Weight
		case entity.CoinSapphire.String():
			sapphire = w.Weight
		}
	}
	return CoinTable(ruby, sapphire)
}

// PowerUpTable builds the power-up kind table from named weights.
// An empty result falls back to CoinRush only.
func PowerUpTable(weights []config.Weight) Table[powerup.Kind] {
	var entries []Entry[powerup.Kind]
	for _, w := range weights {
		if k, ok := powerup.ParseKind(w.Kind); ok {
			entries = append(entries, Entry[powerup.Kind]{Kind: k, Weight: w.Weight})
		}
	}
	if len(entries) == 0 {
		entries = append(entries, Entry[powerup.Kind]{Kind: powerup.CoinRush, Weight: 100})
	}
	return NewTable(entries...)
}
