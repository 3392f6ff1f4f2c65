package tui

import "github.com/vovakirdan/knight-run/internal/core"

// holdTicks is how many ticks a key counts as held after its last press.
// Terminals report key repeats but never releases, so holding a key is
// emulated by the repeat stream keeping the action alive.
const holdTicks = 8

// edgeActions fire on every key event, repeats included.
var edgeActions = map[core.Action]bool{
	core.ActionJump:    true,
	core.ActionAttack:  true,
	core.ActionPause:   true,
	core.ActionRestart: true,
}

// HeldInput turns terminal key presses into per-frame input with held and
// just-pressed states.
type HeldInput struct {
	tick     int
	lastSeen map[core.Action]int
	down     map[core.Action]bool
	just     map[core.Action]bool
}

// NewHeldInput creates an empty input tracker.
func NewHeldInput() *HeldInput {
	return &HeldInput{
		lastSeen: make(map[core.Action]int),
		down:     make(map[core.Action]bool),
		just:     make(map[core.Action]bool),
	}
}

// Press records a key press for the current tick. Movement keys are
// just-pressed only when not already held; edge actions on every press.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if edgeActions[a] || !h.down[a] {
		h.just[a] = true
	}
	h.down[a] = true
	h.lastSeen[a] = h.tick
}

// Frame returns the input of the current tick.
func (h *HeldInput) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a := range h.down {
		if h.just[a] {
			f.Press(a)
		} else {
			f.Hold(a)
		}
	}
	return f
}

// Advance ends the tick: edges are cleared and keys not repeated within
// holdTicks are released.
func (h *HeldInput) Advance() {
	h.tick++
	clear(h.just)
	for a, seen := range h.lastSeen {
		if h.tick-seen >= holdTicks {
			delete(h.down, a)
			delete(h.lastSeen, a)
		}
	}
}

// Release drops every held key.
func (h *HeldInput) Release() {
	clear(h.down)
	clear(h.just)
	clear(h.lastSeen)
}
