// Package spawn implements the per-kind spawners: one generic spawner
// driven by a distance or timer gate, a chance gate, a weighted type table
// and a vertical band, plus the chunk spawner that lays out platforms.
package spawn

import (
	"math/rand"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/entity"
)

// Frame is the world state a spawner reads each update.
type Frame struct {
	PlayerX     float64 // Left edge of the player
	PlayerRight float64 // Right edge of the player
	CameraRight float64 // Right edge of the visible viewport
	WorldLeft   float64 // World left edge
	GroundY     float64
}

// BuildFunc constructs an entity of kind k at (x, y).
type BuildFunc[E any, K any] func(k K, x, y float64) *E

// XFunc reads the x coordinate used for culling.
type XFunc[E any] func(e *E) float64

// Spawner owns the registry of one entity kind and decides when and where
// new entities appear.
type Spawner[E any, K any] struct {
	cfg    config.SpawnerConfig
	rng    *rand.Rand
	table  Table[K]
	build  BuildFunc[E, K]
	xOf    XFunc[E]
	items  *entity.Registry[E]
	nextX  float64
	timer  entity.Interval
	chance float64
}

// New creates a spawner. rng is shared with the rest of the session so a
// seed reproduces a whole run.
func New[E any, K any](cfg config.SpawnerConfig, table Table[K], rng *rand.Rand, build BuildFunc[E, K], xOf XFunc[E]) *Spawner[E, K] {
	s := &Spawner[E, K]{
		cfg:   cfg,
		rng:   rng,
		table: table,
		build: build,
		xOf:   xOf,
		items: entity.NewRegistry[E](16),
	}
	s.Reset()
	return s
}

// Reset clears every entity and rewinds the gates.
func (s *Spawner[E, K]) Reset() {
	s.items.Clear()
	s.nextX = s.cfg.FirstAt
	s.timer = entity.NewInterval(s.cfg.Interval)
	s.chance = s.cfg.Chance
}

// Update runs the spawn gate and culls entities behind the world edge.
// It returns the entity spawned this frame, or nil.
func (s *Spawner[E, K]) Update(dt float64, f Frame) *E {
	var spawned *E
	if s.gate(dt, f) && s.rng.Float64()*100 <= s.chance {
		spawned = s.Spawn(f)
	}
	s.Cull(f.WorldLeft)
	return spawned
}

// gate reports whether a spawn attempt is due. A distance threshold
// advances whether or not the attempt passes the chance gate.
func (s *Spawner[E, K]) gate(dt float64, f Frame) bool {
	switch s.cfg.Gate {
	case config.GateTimer:
		return s.timer.Tick(dt)
	default:
		if f.PlayerX <= s.nextX {
			return false
		}
		s.nextX += s.cfg.StepMin + s.rng.Float64()*(s.cfg.StepMax-s.cfg.StepMin)
		return true
	}
}

// Spawn places one entity past the camera's right edge, ignoring the gates.
func (s *Spawner[E, K]) Spawn(f Frame) *E {
	kind := s.table.Roll(s.rng)
	x := f.CameraRight + s.cfg.Lead + s.rng.Float64()*s.cfg.Jitter
	y := s.cfg.BandMin + s.rng.Float64()*(s.cfg.BandMax-s.cfg.BandMin)
	if s.cfg.AboveGround {
		y += f.GroundY
	}
	e := s.build(kind, x, y)
	s.items.Add(e)
	return e
}

// Cull removes entities whose x fell behind worldLeft minus the margin.
func (s *Spawner[E, K]) Cull(worldLeft float64) int {
	limit := worldLeft - s.cfg.CullMargin
	return s.items.RemoveWhere(func(e *E) bool {
		return s.xOf(e) < limit
	})
}

// Items returns the registry owned by this spawner.
func (s *Spawner[E, K]) Items() *entity.Registry[E] {
	return s.items
}

// NextThreshold returns the player x that triggers the next distance gate.
func (s *Spawner[E, K]) NextThreshold() float64 {
	return s.nextX
}

// SetNextThreshold overrides the distance gate.
func (s *Spawner[E, K]) SetNextThreshold(x float64) {
	s.nextX = x
}

// Chance returns the spawn chance percentage.
func (s *Spawner[E, K]) Chance() float64 {
	return s.chance
}

// SetChance overrides the spawn chance percentage.
func (s *Spawner[E, K]) SetChance(c float64) {
	s.chance = c
}

// Interval returns the timer gate period.
func (s *Spawner[E, K]) Interval() float64 {
	return s.timer.Period()
}

// SetInterval changes the timer gate period.
func (s *Spawner[E, K]) SetInterval(seconds float64) {
	s.timer.SetPeriod(seconds)
}

// SetTable replaces the type-selection table.
func (s *Spawner[E, K]) SetTable(t Table[K]) {
	s.table = t
}

// Table returns the type-selection table.
func (s *Spawner[E, K]) Table() Table[K] {
	return s.table
}

// Margin returns the cull margin.
func (s *Spawner[E, K]) Margin() float64 {
	return s.cfg.CullMargin
}
