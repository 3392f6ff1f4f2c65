package entity

import (
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/sprite"
)

// Bounds builds the collision box of a sprite drawn at (x, y).
func Bounds(sizes sprite.Provider, id sprite.ID, x, y float64) core.Rect {
	w, h := sizes.Size(id)
	return core.NewRect(x, y, w, h)
}

// Enemy is a skeleton or a bat.
type Enemy struct {
	X, Y        float64
	VX          float64
	Kind        EnemyKind
	Health      int
	Blink       Countdown
	Attack      Countdown // Bats only: time until the next rock drop
	LineOfSight bool      // Bats only
}

// NewEnemy creates an enemy with the base health of its kind.
func NewEnemy(kind EnemyKind, x, y, vx float64) *Enemy {
	return &Enemy{
		X:      x,
		Y:      y,
		VX:     vx,
		Kind:   kind,
		Health: kind.Traits().BaseHealth,
	}
}

// TakeDamage subtracts health, starts blinking and reports whether the
// enemy died.
func (e *Enemy) TakeDamage(amount int, blink float64) bool {
	e.Health -= amount
	e.Blink.Start(blink)
	return e.Health <= 0
}

// IsBlinking reports whether the hit flash is showing.
func (e *Enemy) IsBlinking() bool {
	return e.Blink.Active()
}

// CanAttack reports whether the ranged attack cooldown elapsed.
func (e *Enemy) CanAttack() bool {
	return !e.Attack.Active()
}

// Sprite returns the sprite of the enemy kind.
func (e *Enemy) Sprite() sprite.ID {
	return e.Kind.Traits().Sprite
}

// Bounds returns the collision box.
func (e *Enemy) Bounds(sizes sprite.Provider) core.Rect {
	return Bounds(sizes, e.Sprite(), e.X, e.Y)
}

// Projectile is a player fire slash travelling right.
type Projectile struct {
	X, Y   float64
	VX     float64
	Damage int
}

// Bounds returns the collision box.
func (p *Projectile) Bounds(sizes sprite.Provider) core.Rect {
	return Bounds(sizes, sprite.FireSlash, p.X, p.Y)
}

// Rock is a falling hazard dropped by bats.
type Rock struct {
	X, Y   float64
	VX, VY float64
	Damage int
}

// Bounds returns the collision box.
func (r *Rock) Bounds(sizes sprite.Provider) core.Rect {
	return Bounds(sizes, sprite.Rock, r.X, r.Y)
}

// Coin is a currency pickup.
type Coin struct {
	X, Y      float64
	Kind      CoinKind
	StateTime float64 // Animation clock
}

// Bounds returns the collision box.
func (c *Coin) Bounds(sizes sprite.Provider) core.Rect {
	return Bounds(sizes, c.Kind.Sprite(), c.X, c.Y)
}

// Heart restores one health point.
type Heart struct {
	X, Y float64
}

// Bounds returns the collision box.
func (h *Heart) Bounds(sizes sprite.Provider) core.Rect {
	return Bounds(sizes, sprite.Heart, h.X, h.Y)
}

// Platform is a static ledge. Its size comes from its chunk pattern.
type Platform struct {
	X, Y float64
	W, H float64
}

// Bounds returns the collision box.
func (p *Platform) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Top returns the y of the standing surface.
func (p *Platform) Top() float64 {
	return p.Y + p.H
}
