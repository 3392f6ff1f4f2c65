package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move left
	ActionRight           // D, Right arrow - move right
	ActionJump            // W, Space, Up - jump (multi-jump while airborne)
	ActionFastFall        // S, Down - fast fall / drop through platforms
	ActionAttack          // E, J - fire slash
	ActionPause           // P, Escape - pause/unpause
	ActionRestart         // R - restart after game over (host only)
	ActionQuit            // Q, Ctrl+C - leave the run (host only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFastFall:
		return "FastFall"
	case ActionAttack:
		return "Attack"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is the polling contract the simulation reads once per frame.
// Implementations are already debounced per frame.
type Input interface {
	IsPressed(a Action) bool
	IsJustPressed(a Action) bool
}

// InputFrame represents the input state for a single simulation tick.
// An action may be held (pressed) and, on the frame it went down, also
// just-pressed.
type InputFrame struct {
	pressed map[Action]bool
	just    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		pressed: make(map[Action]bool),
		just:    make(map[Action]bool),
	}
}

// Press marks an action as going down this frame (held and just-pressed).
func (f *InputFrame) Press(a Action) {
	f.ensure()
	f.pressed[a] = true
	f.just[a] = true
}

// Hold marks an action as held without an edge this frame.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.pressed[a] = true
}

// IsPressed returns true if the action is held this frame.
func (f InputFrame) IsPressed(a Action) bool {
	return f.pressed[a]
}

// IsJustPressed returns true if the action went down this frame.
func (f InputFrame) IsJustPressed(a Action) bool {
	return f.just[a]
}

// MoveDir returns -1, 0 or 1 from the held left/right actions.
func MoveDir(in Input) int {
	dir := 0
	if in.IsPressed(ActionLeft) {
		dir--
	}
	if in.IsPressed(ActionRight) {
		dir++
	}
	return dir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.pressed {
		delete(f.pressed, k)
	}
	for k := range f.just {
		delete(f.just, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	for k, v := range f.just {
		clone.just[k] = v
	}
	return clone
}

func (f *InputFrame) ensure() {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	if f.just == nil {
		f.just = make(map[Action]bool)
	}
}
