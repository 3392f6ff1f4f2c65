// Package player implements the knight: vertical physics with multi-jump
// and fast-fall, horizontal movement, the invincibility flicker after a hit,
// and the attack cooldown.
package player

import (
	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/entity"
)

// Player is the controllable knight. Position is the bottom-left corner in
// world coordinates.
type Player struct {
	X, Y   float64
	VY     float64 // Vertical velocity, positive is up
	Width  float64
	Height float64

	Health    int
	MaxHealth int
	JumpsDone int
	MaxJumps  int

	MoveSpeed      float64
	AttackCooldown float64
	Attacking      bool

	Invincible bool
	Visible    bool

	attack     entity.Countdown
	invTimer   float64
	flashTimer float64

	cfg     config.PlayerConfig
	groundY float64
}

// New creates a player standing on the ground with the fallback tunables
// from cfg. width and height come from the player sprite.
func New(cfg config.PlayerConfig, groundY, width, height float64) *Player {
	p := &Player{
		Width:          width,
		Height:         height,
		MaxHealth:      cfg.MaxHealth,
		MaxJumps:       cfg.MaxJumps,
		MoveSpeed:      cfg.MoveSpeed,
		AttackCooldown: cfg.AttackCooldown,
		cfg:            cfg,
		groundY:        groundY,
	}
	p.Reset(cfg.StartX, groundY, cfg.StartHealth)
	return p
}

// Update advances the player by dt seconds.
// jump is an edge-triggered request, fastFall is held, moveDir is -1, 0 or 1.
func (p *Player) Update(dt float64, jump, fastFall bool, moveDir int) {
	if p.Y <= p.groundY+p.cfg.GroundEpsilon {
		p.JumpsDone = 0
	}

	// Multi-jump works in the air too
	if jump && p.JumpsDone < p.MaxJumps {
		p.VY = p.cfg.JumpSpeed
		p.JumpsDone++
	}

	gravity := p.cfg.Gravity
	if fastFall {
		gravity = p.cfg.FastFallGravity
	}
	p.VY += gravity * dt
	p.Y += p.VY * dt
	if p.Y < p.groundY {
		p.Y = p.groundY
		p.VY = 0
	}

	p.X += float64(moveDir) * p.MoveSpeed * dt

	if p.Invincible {
		p.invTimer += dt
		p.flashTimer += dt
		if p.flashTimer+entity.Epsilon >= p.cfg.FlashInterval {
			p.Visible = !p.Visible
			p.flashTimer = 0
		}
		if p.invTimer+entity.Epsilon >= p.cfg.InvincibilityTime {
			p.Invincible = false
			p.Visible = true
		}
	}

	if p.attack.Active() {
		if p.attack.Tick(dt) {
			p.Attacking = false
		}
	} else {
		p.Attacking = false
	}
}

// OnHit takes one point of damage unless invincible, and reports whether
// damage was taken.
func (p *Player) OnHit() bool {
	if p.Invincible {
		return false
	}
	if p.Health > 0 {
		p.Health--
	}
	p.Invincible = true
	p.invTimer = 0
	p.flashTimer = 0
	p.Visible = true
	return true
}

// IsAlive reports whether health is left.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// Heal restores one health point, capped at MaxHealth.
func (p *Player) Heal() {
	if p.Health < p.MaxHealth {
		p.Health++
	}
}

// TryAttack starts an attack if the cooldown elapsed and reports whether it
// did. The caller spawns the projectile.
func (p *Player) TryAttack() bool {
	if p.attack.Active() {
		return false
	}
	p.Attacking = true
	p.attack.Start(p.AttackCooldown)
	return true
}

// AttackRemaining returns the seconds until the next attack is allowed.
func (p *Player) AttackRemaining() float64 {
	return p.attack.Remaining()
}

// SlashOrigin returns where a fire slash spawns.
func (p *Player) SlashOrigin() (float64, float64) {
	return p.X + p.cfg.SlashOffsetX, p.Y + p.cfg.SlashOffsetY
}

// ApplyUpgrades overwrites the tunables. Health is pulled down to the new
// maximum, never raised.
func (p *Player) ApplyUpgrades(maxJumps int, attackCooldown, moveSpeed float64, maxHealth int) {
	p.MaxJumps = maxJumps
	p.AttackCooldown = attackCooldown
	p.MoveSpeed = moveSpeed
	p.MaxHealth = maxHealth
	if p.Health > maxHealth {
		p.Health = maxHealth
	}
}

// Reset restores every transient field. Health starts at startHealth,
// capped at MaxHealth.
func (p *Player) Reset(startX, startY float64, startHealth int) {
	p.X = startX
	p.Y = startY
	p.VY = 0
	p.Health = startHealth
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	p.JumpsDone = 0
	p.Invincible = false
	p.Visible = true
	p.invTimer = 0
	p.flashTimer = 0
	p.Attacking = false
	p.attack.Stop()
}

// Bounds returns the collision box.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center, followed by the camera.
func (p *Player) CenterX() float64 {
	return p.X + p.Width/2
}

// GroundY returns the ground level.
func (p *Player) GroundY() float64 {
	return p.groundY
}
