// Package session runs a knight run: it owns the player, the spawners and
// the combat resolver, steps them once per frame in a fixed order, and
// handles game over, reset and upgrade purchases.
package session

import (
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/knight-run/internal/combat"
	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/player"
	"github.com/vovakirdan/knight-run/internal/powerup"
	"github.com/vovakirdan/knight-run/internal/spawn"
	"github.com/vovakirdan/knight-run/internal/sprite"
	"github.com/vovakirdan/knight-run/internal/upgrade"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	RecordRun(run core.RunRecord) error
}

// Deps are the collaborators of a session.
type Deps struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Sprites *sprite.Catalog // Built from Config.Sprites when nil
	Prefs   core.Prefs      // In-memory when nil
	Runs    RunRecorder     // Optional
	Logger  *log.Logger     // Discards when nil
}

// Session is one player's game.
type Session struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	sprites *sprite.Catalog
	prefs   core.Prefs
	runs    RunRecorder
	logger  *log.Logger

	rng        *rand.Rand
	player     *player.Player
	spawners   *spawn.Set
	resolver   *combat.Resolver
	tracker    *powerup.Tracker
	upgrades   *upgrade.Engine
	difficulty *config.DifficultyManager
	world      *Scroller

	base   powerup.Tuning // Derived from upgrades
	tuning powerup.Tuning // base with active power-ups applied

	maxJumps  int
	maxHealth int

	wallet Wallet
	stats  Stats
	events combat.Events

	elapsed  float64
	runCoins int
	runXP    int
	kills    int
	gameOver bool
	paused   bool
}

// New creates a session and starts the first run.
// A sprite catalog missing a required sprite is an error.
func New(d Deps) (*Session, error) {
	if err := d.Config.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	sprites := d.Sprites
	if sprites == nil {
		var err error
		sprites, err = sprite.FromConfig(d.Config.Sprites)
		if err != nil {
			return nil, fmt.Errorf("session: sprites: %w", err)
		}
	}
	if err := sprites.Validate(); err != nil {
		return nil, fmt.Errorf("session: sprites: %w", err)
	}

	prefs := d.Prefs
	if prefs == nil {
		prefs = core.NewMemPrefs()
	}
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := d.Config
	s := &Session{
		cfg:        cfg,
		runtime:    d.Runtime,
		sprites:    sprites,
		prefs:      prefs,
		runs:       d.Runs,
		logger:     logger,
		rng:        rand.New(rand.NewSource(d.Runtime.Seed)),
		tracker:    powerup.NewTracker(cfg.PowerUps),
		upgrades:   upgrade.NewEngine(cfg.Upgrades),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		world:      NewScroller(cfg.World.ViewportWidth, cfg.World.ViewportHeight),
	}

	pw, ph := sprites.Size(sprite.Player)
	_, platformH := sprites.Size(sprite.Platform)
	s.player = player.New(cfg.Player, cfg.World.GroundY, pw, ph)
	s.spawners = spawn.NewSet(cfg, platformH, s.rng)
	s.resolver = combat.NewResolver(cfg.Combat, sprites)

	if err := s.upgrades.Init(prefs); err != nil {
		logger.Warn("could not save upgrade levels", "err", err)
	}
	s.wallet = LoadWallet(prefs)
	s.stats = LoadStats(prefs)

	s.Reset()
	return s, nil
}

// Reset starts a new run. Upgrades, wallet and statistics carry over.
func (s *Session) Reset() {
	s.rng.Seed(s.runtime.Seed)
	s.spawners.Reset()
	s.resolver.Reset()
	s.tuning = s.tracker.Clear(s.tuning)
	s.applyUpgrades()

	s.player.Reset(s.cfg.Player.StartX, s.cfg.World.GroundY, s.maxHealth)
	s.world.Reset(s.player.CenterX())

	s.events.Reset()
	s.elapsed = 0
	s.runCoins = 0
	s.runXP = 0
	s.kills = 0
	s.gameOver = false
	s.paused = false

	s.logger.Info("run started", "seed", s.runtime.Seed, "health", s.player.Health, "jumps", s.maxJumps)
}

// Reseed sets the seed used by the next Reset.
func (s *Session) Reseed(seed int64) {
	s.runtime.Seed = seed
}

// Step advances the run by one frame. Components update in a fixed order:
// platforms, enemies, hazards, projectiles, collectibles, power-ups.
func (s *Session) Step(in core.Input) core.StepResult {
	if s.gameOver {
		return core.StepResult{State: s.State()}
	}
	if in.IsJustPressed(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	dt := s.runtime.FrameDelta()
	s.elapsed += dt
	s.events.Reset()
	ev := &s.events

	speed := s.difficulty.CutoffSpeed(s.cfg.World.CutoffSpeed, s.world.Left, s.elapsed)
	s.world.Advance(dt, speed)
	s.scaleChances()

	p := s.player
	fastFall := in.IsPressed(core.ActionFastFall)
	p.Update(dt, in.IsJustPressed(core.ActionJump), fastFall, core.MoveDir(in))
	p.X = s.world.ClampX(p.X)
	if in.IsJustPressed(core.ActionAttack) && p.TryAttack() {
		s.resolver.Fire(p.SlashOrigin())
		ev.SlashesFired++
	}
	s.world.Follow(p.CenterX())
	f := s.frame()

	// Platforms
	s.spawners.Platforms.Update(dt, speed, f)
	p.Land(s.spawners.Platforms.Items().Snapshot(), fastFall)

	// Enemies
	s.spawners.Skeletons.Update(dt, f)
	s.spawners.Bats.Update(dt, f)
	s.resolver.UpdateEnemies(dt, s.spawners.Skeletons.Items(), p, ev)
	s.resolver.UpdateEnemies(dt, s.spawners.Bats.Items(), p, ev)

	s.resolver.UpdateHazards(dt, s.world.Left, s.cfg.World.GroundY, p, ev)
	s.resolver.UpdateProjectiles(dt, s.world.Right(), ev, s.spawners.Skeletons.Items(), s.spawners.Bats.Items())

	// Collectibles
	s.spawners.Coins.Update(dt, f)
	s.spawners.Hearts.Update(dt, f)
	s.resolver.UpdateCollectibles(dt, s.spawners.Coins.Items(), s.spawners.Hearts.Items(), p, ev)

	// Power-ups
	s.spawners.PowerUps.Update(dt, f)
	s.resolver.UpdatePowerUps(dt, s.spawners.PowerUps.Items(), p, ev)
	s.updatePowerUps(dt, ev.PowerUps)

	s.collect(ev)

	if !p.IsAlive() {
		s.endRun()
	}
	return core.StepResult{State: s.State()}
}

func (s *Session) frame() spawn.Frame {
	b := s.player.Bounds()
	return spawn.Frame{
		PlayerX:     b.X,
		PlayerRight: b.Right(),
		CameraRight: s.world.Right(),
		WorldLeft:   s.world.Left,
		GroundY:     s.cfg.World.GroundY,
	}
}

// scaleChances raises enemy spawn chances with difficulty.
func (s *Session) scaleChances() {
	if !s.difficulty.IsEnabled() {
		return
	}
	sc := s.cfg.Spawners
	s.spawners.Skeletons.SetChance(s.difficulty.SpawnChance(sc.Skeleton.Chance, s.world.Left, s.elapsed))
	s.spawners.Bats.SetChance(s.difficulty.SpawnChance(sc.Bat.Chance, s.world.Left, s.elapsed))
}

func (s *Session) updatePowerUps(dt float64, picked []powerup.Kind) {
	changed := false
	for _, k := range picked {
		var started bool
		s.tuning, started = s.tracker.Activate(k, s.tuning)
		changed = changed || started
		s.logger.Debug("power-up picked", "kind", k, "new", started)
	}

	var expired []powerup.Kind
	s.tuning, expired = s.tracker.Update(dt, s.tuning)
	for _, k := range expired {
		s.logger.Debug("power-up expired", "kind", k)
	}
	if changed || len(expired) > 0 {
		s.pushTuning()
	}
}

// collect moves the frame's rewards into the wallet.
func (s *Session) collect(ev *combat.Events) {
	s.kills += len(ev.Kills)
	if ev.Coins == 0 && ev.XP == 0 {
		return
	}
	s.runCoins += ev.Coins
	s.runXP += ev.XP
	s.wallet.Coins += ev.Coins
	s.wallet.XP += ev.XP
	s.wallet.Save(s.prefs)
	if err := s.prefs.Flush(); err != nil {
		s.logger.Warn("could not save wallet", "err", err)
	}
}

func (s *Session) endRun() {
	s.gameOver = true
	run := s.Run()
	s.logger.Info("game over",
		"distance", run.Distance,
		"coins", run.Coins,
		"xp", run.XP,
		"kills", run.Kills,
	)

	if err := s.stats.Record(s.prefs, run); err != nil {
		s.logger.Warn("could not save stats", "err", err)
	}
	if s.runs != nil {
		if err := s.runs.RecordRun(run); err != nil {
			s.logger.Warn("could not record run", "err", err)
		}
	}
}

// Run summarizes the current run.
func (s *Session) Run() core.RunRecord {
	return core.RunRecord{
		Distance:   int(s.world.Left),
		Coins:      s.runCoins,
		XP:         s.runXP,
		Kills:      s.kills,
		DurationMs: int64(s.elapsed * 1000),
	}
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Distance:  int(s.world.Left),
		Coins:     s.wallet.Coins,
		XP:        s.wallet.XP,
		Kills:     s.kills,
		Health:    s.player.Health,
		MaxHealth: s.player.MaxHealth,
		GameOver:  s.gameOver,
		Paused:    s.paused,
	}
}

// Player returns the knight.
func (s *Session) Player() *player.Player {
	return s.player
}

// Spawners returns the entity spawners.
func (s *Session) Spawners() *spawn.Set {
	return s.spawners
}

// Resolver returns the combat resolver.
func (s *Session) Resolver() *combat.Resolver {
	return s.resolver
}

// World returns the scroller.
func (s *Session) World() *Scroller {
	return s.world
}

// Upgrades returns the upgrade engine.
func (s *Session) Upgrades() *upgrade.Engine {
	return s.upgrades
}

// Sprites returns the sprite catalog.
func (s *Session) Sprites() *sprite.Catalog {
	return s.sprites
}

// Tuning returns the current tunables including active power-ups.
func (s *Session) Tuning() powerup.Tuning {
	return s.tuning
}

// PowerUps returns the active power-up effects.
func (s *Session) PowerUps() []powerup.Effect {
	return s.tracker.Active()
}

// Events returns what happened during the last frame. The slices are
// copies and stay valid after the next Step.
func (s *Session) Events() combat.Events {
	ev := s.events
	ev.Kills = slices.Clone(ev.Kills)
	ev.PowerUps = slices.Clone(ev.PowerUps)
	return ev
}

// Wallet returns the balances.
func (s *Session) Wallet() Wallet {
	return s.wallet
}

// Stats returns the lifetime statistics.
func (s *Session) Stats() Stats {
	return s.stats
}

// Difficulty returns the difficulty level in [0, 1].
func (s *Session) Difficulty() float64 {
	return s.difficulty.Level(s.world.Left, s.elapsed)
}
