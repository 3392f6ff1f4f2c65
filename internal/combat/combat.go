// Package combat resolves collisions between the player, enemies,
// projectiles, hazards and pickups, and applies their consequences.
//
// Every pass iterates a snapshot of the registry it walks and applies the
// removals it scheduled once the pass completes.
package combat

import (
	"math"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/entity"
	"github.com/vovakirdan/knight-run/internal/powerup"
	"github.com/vovakirdan/knight-run/internal/sprite"
)

// Target is the player as seen by the resolver.
type Target interface {
	Bounds() core.Rect
	OnHit() bool
	Heal()
}

// Events summarizes what happened during one frame.
type Events struct {
	PlayerHits   int // Hits that actually cost health
	Contacts     int // Overlaps with enemies or hazards, including ignored ones
	Kills        []entity.EnemyKind
	XP           int
	Coins        int
	CoinsPicked  int
	Hearts       int
	PowerUps     []powerup.Kind
	RocksDropped int
	SlashesFired int
}

// Reset clears the events for the next frame.
func (e *Events) Reset() {
	*e = Events{Kills: e.Kills[:0], PowerUps: e.PowerUps[:0]}
}

// Resolver owns the player projectiles and the falling hazards.
type Resolver struct {
	cfg   config.CombatConfig
	sizes sprite.Provider

	// XPMultiplier scales experience rewards; results are floored.
	XPMultiplier float64

	projectiles *entity.Registry[entity.Projectile]
	rocks       *entity.Registry[entity.Rock]
}

// NewResolver creates a resolver.
func NewResolver(cfg config.CombatConfig, sizes sprite.Provider) *Resolver {
	return &Resolver{
		cfg:          cfg,
		sizes:        sizes,
		XPMultiplier: 1,
		projectiles:  entity.NewRegistry[entity.Projectile](8),
		rocks:        entity.NewRegistry[entity.Rock](8),
	}
}

// Reset removes every projectile and hazard.
func (r *Resolver) Reset() {
	r.projectiles.Clear()
	r.rocks.Clear()
}

// Projectiles returns the fire slash registry.
func (r *Resolver) Projectiles() *entity.Registry[entity.Projectile] {
	return r.projectiles
}

// Rocks returns the falling hazard registry.
func (r *Resolver) Rocks() *entity.Registry[entity.Rock] {
	return r.rocks
}

// Fire emits a fire slash at (x, y) travelling right.
func (r *Resolver) Fire(x, y float64) *entity.Projectile {
	p := &entity.Projectile{X: x, Y: y, VX: r.cfg.SlashSpeed, Damage: r.cfg.SlashDamage}
	r.projectiles.Add(p)
	return p
}

// DropRock releases a rock at (x, y).
func (r *Resolver) DropRock(x, y float64) *entity.Rock {
	rock := &entity.Rock{X: x, Y: y, VY: r.cfg.RockFallSpeed, Damage: r.cfg.RockDamage}
	r.rocks.Add(rock)
	return rock
}

// XPFor returns the experience awarded for killing kind.
func (r *Resolver) XPFor(kind entity.EnemyKind) int {
	return int(math.Floor(float64(kind.Traits().XPReward) * r.XPMultiplier))
}

// UpdateEnemies advances one enemy registry: blink and attack timers, movement,
// the bat line-of-sight rock drop and contact damage to the target.
func (r *Resolver) UpdateEnemies(dt float64, enemies *entity.Registry[entity.Enemy], target Target, ev *Events) {
	for _, e := range enemies.Snapshot() {
		e.Blink.Tick(dt)
		e.Attack.Tick(dt)
		e.X += e.VX * dt

		tb := target.Bounds()
		if e.Kind.Traits().Family == entity.FamilyBat {
			e.LineOfSight = math.Abs(e.X-tb.X) <= r.cfg.BatSightRange && tb.Y < e.Y
			if e.LineOfSight && e.CanAttack() {
				r.DropRock(e.X, e.Y-r.cfg.RockDropOffset)
				e.Attack.Start(r.cfg.BatAttackCooldown)
				ev.RocksDropped++
			}
		}

		if tb.Intersects(e.Bounds(r.sizes)) {
			ev.Contacts++
			if target.OnHit() {
				ev.PlayerHits++
			}
		}
	}
}

// UpdateHazards moves rocks, damages the target on contact and removes rocks
// that hit the target, the ground or fell behind the world edge.
func (r *Resolver) UpdateHazards(dt, worldLeft, groundY float64, target Target, ev *Events) {
	var spent []*entity.Rock
	for _, rock := range r.rocks.Snapshot() {
		rock.Y -= rock.VY * dt
		rock.X += rock.VX * dt

		if target.Bounds().Intersects(rock.Bounds(r.sizes)) {
			ev.Contacts++
			if target.OnHit() {
				ev.PlayerHits++
			}
			spent = append(spent, rock)
			continue
		}
		if rock.Y <= groundY || rock.X < worldLeft-r.cfg.RockCullMargin {
			spent = append(spent, rock)
		}
	}
	for _, rock := range spent {
		r.rocks.Remove(rock)
	}
}

// UpdateProjectiles moves fire slashes and resolves them against the enemy
// registries in order. A slash hits at most one enemy, the first overlap
// found. Slashes past the camera's right edge plus margin are removed.
func (r *Resolver) UpdateProjectiles(dt, cameraRight float64, ev *Events, groups ...*entity.Registry[entity.Enemy]) {
	var spent []*entity.Projectile
	type kill struct {
		group *entity.Registry[entity.Enemy]
		enemy *entity.Enemy
	}
	var dead []kill

	for _, p := range r.projectiles.Snapshot() {
		p.X += p.VX * dt
		pb := p.Bounds(r.sizes)

		hit := false
		for _, g := range groups {
			for _, e := range g.Snapshot() {
				if e.Health <= 0 || !pb.Intersects(e.Bounds(r.sizes)) {
					continue
				}
				damage := p.Damage
				if damage <= 0 {
					damage = 1
				}
				if e.TakeDamage(damage, r.cfg.BlinkDuration) {
					dead = append(dead, kill{group: g, enemy: e})
					ev.Kills = append(ev.Kills, e.Kind)
					ev.XP += r.XPFor(e.Kind)
				}
				hit = true
				break
			}
			if hit {
				break
			}
		}

		if hit || p.X > cameraRight+r.cfg.SlashCullMargin {
			spent = append(spent, p)
		}
	}

	for _, p := range spent {
		r.projectiles.Remove(p)
	}
	for _, k := range dead {
		k.group.Remove(k.enemy)
	}
}

// UpdateCollectibles applies coin and heart pickups.
func (r *Resolver) UpdateCollectibles(dt float64, coins *entity.Registry[entity.Coin], hearts *entity.Registry[entity.Heart], target Target, ev *Events) {
	tb := target.Bounds()

	var picked []*entity.Coin
	for _, c := range coins.Snapshot() {
		c.StateTime += dt
		if tb.Intersects(c.Bounds(r.sizes)) {
			ev.Coins += c.Kind.Value()
			ev.CoinsPicked++
			picked = append(picked, c)
		}
	}
	for _, c := range picked {
		coins.Remove(c)
	}

	var healed []*entity.Heart
	for _, h := range hearts.Snapshot() {
		if tb.Intersects(h.Bounds(r.sizes)) {
			target.Heal()
			ev.Hearts++
			healed = append(healed, h)
		}
	}
	for _, h := range healed {
		hearts.Remove(h)
	}
}

// UpdatePowerUps moves pickups and reports the kinds collected this frame.
func (r *Resolver) UpdatePowerUps(dt float64, pickups *entity.Registry[powerup.Pickup], target Target, ev *Events) {
	tb := target.Bounds()
	var taken []*powerup.Pickup
	for _, p := range pickups.Snapshot() {
		p.X += p.VX * dt
		if tb.Intersects(p.Bounds(r.sizes)) {
			ev.PowerUps = append(ev.PowerUps, p.Kind)
			taken = append(taken, p)
		}
	}
	for _, p := range taken {
		pickups.Remove(p)
	}
}
