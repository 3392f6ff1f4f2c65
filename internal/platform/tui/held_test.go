package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/knight-run/internal/core"
)

func TestHeldInputMovement(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionRight)

	f := h.Frame()
	if !f.IsPressed(core.ActionRight) || !f.IsJustPressed(core.ActionRight) {
		t.Fatal("first press should be held and just-pressed")
	}
	h.Advance()

	// Repeat within the hold window keeps the key down without an edge
	h.Press(core.ActionRight)
	f = h.Frame()
	if !f.IsPressed(core.ActionRight) || f.IsJustPressed(core.ActionRight) {
		t.Error("key repeat should hold without an edge")
	}

	for i := 0; i < holdTicks-1; i++ {
		h.Advance()
		if !h.Frame().IsPressed(core.ActionRight) {
			t.Fatalf("released after %d ticks, want %d", i+1, holdTicks)
		}
	}
	h.Advance()
	if h.Frame().IsPressed(core.ActionRight) {
		t.Error("key should be released after the hold window")
	}
}

func TestHeldInputEdgeActions(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionJump)
	h.Advance()
	h.Press(core.ActionJump)

	if !h.Frame().IsJustPressed(core.ActionJump) {
		t.Error("every jump press should be an edge")
	}
	h.Advance()
	if h.Frame().IsJustPressed(core.ActionJump) {
		t.Error("edge must not outlive its tick")
	}
}

func TestHeldInputRelease(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionLeft)
	h.Press(core.ActionNone)
	h.Release()

	f := h.Frame()
	if f.IsPressed(core.ActionLeft) || f.IsPressed(core.ActionNone) {
		t.Error("Release should drop every key")
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		want   core.Action
		isQuit bool
	}{
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{" ", core.ActionJump, false},
		{"s", core.ActionFastFall, false},
		{"e", core.ActionAttack, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, false},
		{"x", core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.want || quit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.key, action, quit, tt.want, tt.isQuit)
			}
		})
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
