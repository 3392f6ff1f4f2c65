package session

import (
	"math"

	"github.com/vovakirdan/knight-run/internal/entity"
	"github.com/vovakirdan/knight-run/internal/powerup"
	"github.com/vovakirdan/knight-run/internal/spawn"
	"github.com/vovakirdan/knight-run/internal/upgrade"
)

// PurchaseResult is the outcome of a purchase attempt.
type PurchaseResult int

const (
	PurchaseOK PurchaseResult = iota
	PurchaseInsufficientFunds
	PurchaseMaxLevel
	PurchaseUnknown
)

// String returns a human-readable outcome.
func (r PurchaseResult) String() string {
	switch r {
	case PurchaseOK:
		return "purchased"
	case PurchaseInsufficientFunds:
		return "not enough coins"
	case PurchaseMaxLevel:
		return "max level"
	case PurchaseUnknown:
		return "unknown upgrade"
	default:
		return "unknown"
	}
}

// Purchase buys the next level of the named upgrade with coins.
// A rejected purchase changes nothing and writes nothing.
func (s *Session) Purchase(name string) PurchaseResult {
	u, ok := s.upgrades.Get(name)
	if !ok {
		s.logger.Info("purchase rejected", "upgrade", name, "reason", PurchaseUnknown)
		return PurchaseUnknown
	}
	if !u.CanUpgrade() {
		s.logger.Info("purchase rejected", "upgrade", name, "reason", PurchaseMaxLevel)
		return PurchaseMaxLevel
	}
	cost := u.Cost()
	if s.wallet.Coins < cost {
		s.logger.Info("purchase rejected", "upgrade", name, "reason", PurchaseInsufficientFunds,
			"cost", cost, "coins", s.wallet.Coins)
		return PurchaseInsufficientFunds
	}

	s.wallet.Coins -= cost
	u.Upgrade()
	s.wallet.Save(s.prefs)
	if err := s.upgrades.Save(s.prefs); err != nil {
		s.logger.Warn("could not save purchase", "err", err)
	}
	s.applyUpgrades()

	s.logger.Info("upgrade purchased", "upgrade", name, "level", u.Level(), "cost", cost, "coins", s.wallet.Coins)
	return PurchaseOK
}

// ResetUpgrades sets every upgrade back to level 1. Coins are not refunded.
func (s *Session) ResetUpgrades() error {
	if err := s.upgrades.ResetToLevelOne(s.prefs); err != nil {
		return err
	}
	s.applyUpgrades()
	return nil
}

// applyUpgrades copies the upgrade values into the player, the coin
// spawner and the resolver. Active power-ups stay applied on top.
// The coin interval is the configured base divided by the spawn rate.
func (s *Session) applyUpgrades() {
	cfg := s.cfg
	u := s.upgrades
	rubyDef, sapphireDef := coinWeights(spawn.CoinTableFromWeights(cfg.Spawners.Coin.Weights))

	rate := u.ValueOr(upgrade.CoinSpawnRate, 1)
	if rate <= 0 {
		rate = 1
	}

	s.base = powerup.Tuning{
		CoinInterval:   cfg.Spawners.Coin.Interval / rate,
		RubyRate:       u.ValueOr(upgrade.RubyRate, rubyDef),
		SapphireRate:   u.ValueOr(upgrade.SapphireRate, sapphireDef),
		MoveSpeed:      u.ValueOr(upgrade.MovingSpeed, cfg.Player.MoveSpeed),
		AttackCooldown: u.ValueOr(upgrade.AttackSpeed, cfg.Player.AttackCooldown),
	}
	s.maxJumps = int(math.Round(u.ValueOr(upgrade.JumpCount, float64(cfg.Player.MaxJumps))))
	s.maxHealth = int(math.Round(u.ValueOr(upgrade.MaxHealth, float64(cfg.Player.MaxHealth))))
	s.resolver.XPMultiplier = u.ValueOr(upgrade.EXPBoost, 1)

	s.tuning = s.tracker.Rebase(s.base)
	s.pushTuning()
}

// pushTuning copies the current tuning into the player and coin spawner.
func (s *Session) pushTuning() {
	t := s.tuning
	s.player.ApplyUpgrades(s.maxJumps, t.AttackCooldown, t.MoveSpeed, s.maxHealth)
	s.spawners.Coins.SetInterval(t.CoinInterval)
	s.spawners.Coins.SetTable(spawn.CoinTable(t.RubyRate, t.SapphireRate))
}

// coinWeights reads the ruby and sapphire weights of a coin table.
func coinWeights(t spawn.Table[entity.CoinKind]) (ruby, sapphire float64) {
	for _, e := range t.Entries() {
		switch e.Kind {
		case entity.CoinRuby:
			ruby = e.Weight
		case entity.CoinSapphire:
			sapphire = e.Weight
		}
	}
	return ruby, sapphire
}
