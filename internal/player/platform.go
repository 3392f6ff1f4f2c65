package player

import "github.com/vovakirdan/knight-run/internal/entity"

// landingTolerance lets feet slightly above a platform top still land.
const landingTolerance = 2.0

// Land snaps the player onto the first elevated platform its feet are
// falling onto and reports whether it is standing on one.
// Holding drop while above the ground falls through.
func (p *Player) Land(platforms []*entity.Platform, drop bool) bool {
	foot := p.cfg.FootHeight
	for _, pl := range platforms {
		// Ground-level platforms are walked on through the ground clamp
		if pl.Y <= p.groundY {
			continue
		}
		if p.X+p.Width <= pl.X || p.X >= pl.X+pl.W {
			continue
		}
		top := pl.Top()
		if p.VY > 0 || p.Y < top-foot || p.Y > top+landingTolerance {
			continue
		}

		if drop && p.Y > p.groundY+5 {
			return false
		}
		p.Y = top
		p.VY = 0
		p.JumpsDone = 0
		return true
	}
	return false
}
