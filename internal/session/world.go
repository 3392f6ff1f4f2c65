package session

import (
	"math"

	"github.com/vovakirdan/knight-run/internal/core"
)

// Scroller tracks the advancing world edge and the camera that follows the
// player without ever showing area behind that edge.
type Scroller struct {
	Left    float64 // World left edge, only ever grows
	CameraX float64 // Camera center
	width   float64
	height  float64
}

// NewScroller creates a scroller for a viewport of the given world size.
func NewScroller(viewportW, viewportH float64) *Scroller {
	return &Scroller{width: viewportW, height: viewportH}
}

// Reset rewinds the world edge to 0 and centers the camera on centerX.
func (sc *Scroller) Reset(centerX float64) {
	sc.Left = 0
	sc.Follow(centerX)
}

// Advance moves the world edge by speed*dt. Negative speeds are ignored.
func (sc *Scroller) Advance(dt, speed float64) {
	if speed > 0 {
		sc.Left += speed * dt
	}
}

// Follow centers the camera on centerX, clamped so its left edge never
// goes behind the world edge.
func (sc *Scroller) Follow(centerX float64) {
	sc.CameraX = math.Max(centerX, sc.Left+sc.width/2)
}

// ClampX keeps x at or ahead of the world edge.
func (sc *Scroller) ClampX(x float64) float64 {
	return math.Max(x, sc.Left)
}

// Right returns the right edge of the viewport.
func (sc *Scroller) Right() float64 {
	return sc.CameraX + sc.width/2
}

// View returns the visible world rectangle.
func (sc *Scroller) View() core.Rect {
	return core.NewRect(sc.CameraX-sc.width/2, 0, sc.width, sc.height)
}
