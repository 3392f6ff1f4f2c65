package session

import (
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/entity"
	"github.com/vovakirdan/knight-run/internal/sprite"
)

// Sink draws a sprite at a world position. The session calls it once per
// visible entity per frame.
type Sink interface {
	Draw(id sprite.ID, x, y float64)
}

// Render draws every entity overlapping the camera view, back to front.
// Blinking enemies and the flickering player are skipped on their hidden
// frames.
func (s *Session) Render(sink Sink) {
	view := s.world.View()
	draw := func(id sprite.ID, x, y float64) {
		if view.Intersects(entity.Bounds(s.sprites, id, x, y)) {
			sink.Draw(id, x, y)
		}
	}

	for _, p := range s.spawners.Platforms.Items().Snapshot() {
		if view.Intersects(p.Bounds()) {
			sink.Draw(sprite.Platform, p.X, p.Y)
		}
	}
	for _, c := range s.spawners.Coins.Items().Snapshot() {
		draw(c.Kind.Sprite(), c.X, c.Y)
	}
	for _, h := range s.spawners.Hearts.Items().Snapshot() {
		draw(sprite.Heart, h.X, h.Y)
	}
	for _, p := range s.spawners.PowerUps.Items().Snapshot() {
		draw(sprite.CoinBonus, p.X, p.Y)
	}
	for _, group := range []*entity.Registry[entity.Enemy]{s.spawners.Skeletons.Items(), s.spawners.Bats.Items()} {
		for _, e := range group.Snapshot() {
			if blinkHidden(e) {
				continue
			}
			draw(e.Sprite(), e.X, e.Y)
		}
	}
	for _, r := range s.resolver.Rocks().Snapshot() {
		draw(sprite.Rock, r.X, r.Y)
	}
	for _, p := range s.resolver.Projectiles().Snapshot() {
		draw(sprite.FireSlash, p.X, p.Y)
	}

	if p := s.player; p.Visible {
		id := sprite.Player
		if p.Attacking {
			id = sprite.PlayerAttack
		}
		draw(id, p.X, p.Y)
	}
}

// blinkInterval is how long a blinking enemy stays in each phase.
const blinkInterval = 0.05

// blinkHidden reports whether a hit enemy is in its hidden phase.
func blinkHidden(e *entity.Enemy) bool {
	if !e.IsBlinking() {
		return false
	}
	return int(e.Blink.Remaining()/blinkInterval)%2 == 1
}

// View returns the visible world rectangle.
func (s *Session) View() core.Rect {
	return s.world.View()
}
