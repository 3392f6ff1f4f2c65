package sprite

import (
	"strings"
	"testing"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
)

func TestFromDefaultConfig(t *testing.T) {
	c, err := FromConfig(config.DefaultGameConfig().Sprites)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	w, h := c.Size(Player)
	if w != 135 || h != 150 {
		t.Errorf("player size = %vx%v, want 135x150", w, h)
	}

	info, ok := c.Lookup(Heart)
	if !ok {
		t.Fatal("heart not found")
	}
	if info.Glyph != '♥' {
		t.Errorf("heart glyph = %q, want ♥", info.Glyph)
	}
	if info.Color != core.ColorRed {
		t.Errorf("heart color = %v, want red", info.Color)
	}

	if got := len(c.List()); got != len(Required()) {
		t.Errorf("List() len = %d, want %d", got, len(Required()))
	}
}

func TestRegisterDuplicate(t *testing.T) {
	c := NewCatalog()
	if err := c.Register(Info{ID: Rock, Width: 1, Height: 1}); err != nil {
		t.Fatal(err)
	}
	if err := c.Register(Info{ID: Rock, Width: 2, Height: 2}); err == nil {
		t.Error("expected duplicate registration error")
	}
}

func TestValidateReportsGaps(t *testing.T) {
	c := NewCatalog()
	_ = c.Register(Info{ID: Player, Width: 0, Height: 10})

	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{`"player" has non-positive size`, `"rock" missing`, `"coin_bonus" missing`} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not contain %q", msg, want)
		}
	}
}

func TestSizeUnknown(t *testing.T) {
	c := NewCatalog()
	if w, h := c.Size("nope"); w != 0 || h != 0 {
		t.Errorf("unknown size = %vx%v, want 0x0", w, h)
	}
}

func TestListSorted(t *testing.T) {
	c := NewCatalog()
	for _, id := range []ID{Rock, BatBrown, Heart} {
		_ = c.Register(Info{ID: id, Width: 1, Height: 1})
	}
	list := c.List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
