package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/sprite"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("first line %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("second line %q missing %q", lines[1], "xyz")
	}
}

func newSinkFixture(t *testing.T) (*core.Screen, *ScreenSink) {
	t.Helper()
	cat := sprite.NewCatalog()
	if err := cat.Register(sprite.Info{ID: sprite.CoinGold, Width: 2, Height: 1, Glyph: 'o', Color: core.ColorYellow}); err != nil {
		t.Fatal(err)
	}
	// One world unit per cell below the HUD row.
	screen := core.NewScreen(80, 25)
	return screen, NewScreenSink(screen, cat, core.NewRect(0, 0, 80, 24))
}

func TestScreenSinkPlacesGlyphs(t *testing.T) {
	screen, sink := newSinkFixture(t)

	sink.Draw(sprite.CoinGold, 10, 0)

	bottom := screen.Height() - 1
	for _, x := range []int{10, 11} {
		if c := screen.GetCell(x, bottom); c.Rune != 'o' || c.Color != core.ColorYellow {
			t.Errorf("cell (%d,%d) = %q, want coin glyph", x, bottom, c.Rune)
		}
	}
	if c := screen.GetCell(12, bottom); c.Rune != ' ' {
		t.Errorf("cell past the sprite = %q, want blank", c.Rune)
	}
	if c := screen.GetCell(10, bottom-1); c.Rune != ' ' {
		t.Errorf("cell above the sprite = %q, want blank", c.Rune)
	}
}

func TestScreenSinkKeepsHUDRow(t *testing.T) {
	screen, sink := newSinkFixture(t)

	sink.Draw(sprite.CoinGold, 0, 23.5)

	if c := screen.GetCell(0, 0); c.Rune != ' ' {
		t.Errorf("HUD row drawn over: %q", c.Rune)
	}
	if c := screen.GetCell(0, 1); c.Rune != 'o' {
		t.Errorf("top play row = %q, want coin glyph", c.Rune)
	}
}

func TestScreenSinkClipsAtRightEdge(t *testing.T) {
	screen, sink := newSinkFixture(t)

	sink.Draw(sprite.CoinGold, 79, 0)

	if c := screen.GetCell(79, screen.Height()-1); c.Rune != 'o' {
		t.Errorf("last column = %q, want coin glyph", c.Rune)
	}
}

func TestScreenSinkIgnoresUnknownSprites(t *testing.T) {
	screen, sink := newSinkFixture(t)

	sink.Draw(sprite.Skeleton, 10, 0)

	if strings.TrimSpace(screen.String()) != "" {
		t.Error("unknown sprite should draw nothing")
	}
}

func TestDrawGround(t *testing.T) {
	screen, sink := newSinkFixture(t)

	sink.DrawGround(4)

	// Height 4 is shown on row 20, so the ground starts right below it.
	if c := screen.GetCell(0, 20); c.Rune != ' ' {
		t.Errorf("row 20 = %q, want blank", c.Rune)
	}
	if c := screen.GetCell(0, 21); c.Rune != '═' {
		t.Errorf("row 21 = %q, want ground line", c.Rune)
	}
	if c := screen.GetCell(79, 24); c.Rune != '░' {
		t.Errorf("row 24 = %q, want ground fill", c.Rune)
	}
}

func TestRenderSessionShowsHUD(t *testing.T) {
	m := newTestModel(t)
	screen := core.NewScreen(80, 24)

	RenderSession(screen, m.sess)

	if hud := screen.Row(0); !strings.Contains(hud, "Dist 0") || !strings.Contains(hud, "♥") {
		t.Errorf("HUD = %q", hud)
	}
}

func TestHUDHeartsStayInRange(t *testing.T) {
	m := newTestModel(t)
	screen := core.NewScreen(80, 24)
	maxHealth := m.sess.State().MaxHealth
	m.sess.Player().Health = maxHealth + 2

	RenderSession(screen, m.sess)

	if got := strings.Count(screen.Row(0), "♥"); got != maxHealth {
		t.Errorf("hearts = %d, want %d", got, maxHealth)
	}
}

func TestCenteredMessageLines(t *testing.T) {
	screen := core.NewScreen(40, 10)

	drawCenteredMessage(screen, "PAUSED", "abcd")

	// The box is 10x5 at (15,2); its first line sits on row 5.
	if c := screen.GetCell(18, 5); c.Rune != 'a' {
		t.Errorf("row 5 = %q, want the line centered at column 18", screen.Row(5))
	}
}
