package upgrade

import (
	"math"
	"testing"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
)

func spec(name string) config.UpgradeSpec {
	for _, s := range config.DefaultGameConfig().Upgrades {
		if s.Name == name {
			return s
		}
	}
	panic("no upgrade " + name)
}

func TestGrowthCurves(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		wantValue float64
		wantCost  int
	}{
		{JumpCount, 1, 1, 100},
		{JumpCount, 3, 3, 132},
		{MaxHealth, 4, 6, 304},
		{AttackSpeed, 1, 0.25, 150},
		{AttackSpeed, 3, 0.2025, 198},
		{MovingSpeed, 2, 330, 172},
		{EXPBoost, 3, 2.25, 264},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := New(spec(tt.name))
			u.SetLevel(tt.level)
			if math.Abs(u.Value()-tt.wantValue) > 1e-9 {
				t.Errorf("Value at level %d = %v, want %v", tt.level, u.Value(), tt.wantValue)
			}
			if u.Cost() != tt.wantCost {
				t.Errorf("Cost at level %d = %d, want %d", tt.level, u.Cost(), tt.wantCost)
			}
		})
	}
}

func TestUpgradeMonotonicAndCapped(t *testing.T) {
	u := New(spec(JumpCount))
	prev := u.Level()
	for i := 0; i < 10; i++ {
		changed := u.Upgrade()
		if u.Level() < prev {
			t.Fatalf("level decreased from %d to %d", prev, u.Level())
		}
		if u.Level() > u.MaxLevel {
			t.Fatalf("level %d exceeds max %d", u.Level(), u.MaxLevel)
		}
		if changed != (u.Level() == prev+1) {
			t.Errorf("Upgrade() = %v but level went %d -> %d", changed, prev, u.Level())
		}
		prev = u.Level()
	}

	cost, value := u.Cost(), u.Value()
	if u.Upgrade() {
		t.Error("Upgrade at max level should be a no-op")
	}
	if u.Cost() != cost || u.Value() != value || u.CanUpgrade() {
		t.Error("state changed at max level")
	}
}

func TestSetLevelClamps(t *testing.T) {
	u := New(spec(EXPBoost))
	u.SetLevel(99)
	if u.Level() != 5 {
		t.Errorf("Level = %d, want 5", u.Level())
	}
	u.SetLevel(-3)
	if u.Level() != 1 {
		t.Errorf("Level = %d, want 1", u.Level())
	}
}

func TestEngineRoundTrip(t *testing.T) {
	specs := config.DefaultGameConfig().Upgrades
	prefs := core.NewMemPrefs()

	e := NewEngine(specs)
	for i, u := range e.All() {
		for j := 0; j < i%4; j++ {
			u.Upgrade()
		}
	}
	if err := e.Save(prefs); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewEngine(specs)
	loaded.Load(prefs)
	for _, want := range e.All() {
		got, ok := loaded.Get(want.Name)
		if !ok {
			t.Fatalf("%s missing after load", want.Name)
		}
		if got.Level() != want.Level() || got.Value() != want.Value() || got.Cost() != want.Cost() {
			t.Errorf("%s: got (%d, %v, %d), want (%d, %v, %d)",
				want.Name, got.Level(), got.Value(), got.Cost(), want.Level(), want.Value(), want.Cost())
		}
	}
}

func TestEngineLoadClampsAndDefaults(t *testing.T) {
	prefs := core.NewMemPrefs()
	prefs.PutInt(LevelKey(JumpCount), 40)
	prefs.PutInt(LevelKey(MaxHealth), 0)

	e := NewEngine(config.DefaultGameConfig().Upgrades)
	e.Load(prefs)

	if u, _ := e.Get(JumpCount); u.Level() != 3 {
		t.Errorf("Jump Count level = %d, want clamped 3", u.Level())
	}
	if u, _ := e.Get(MaxHealth); u.Level() != 1 {
		t.Errorf("Max Health level = %d, want clamped 1", u.Level())
	}
	if u, _ := e.Get(RubyRate); u.Level() != 1 {
		t.Errorf("absent Ruby Rate level = %d, want default 1", u.Level())
	}
}

func TestEngineInit(t *testing.T) {
	specs := config.DefaultGameConfig().Upgrades

	t.Run("first run seeds defaults", func(t *testing.T) {
		prefs := core.NewMemPrefs()
		e := NewEngine(specs)
		if e.HasSaved(prefs) {
			t.Fatal("empty store reports saved upgrades")
		}
		if err := e.Init(prefs); err != nil {
			t.Fatal(err)
		}
		if prefs.GetInt(LevelKey(JumpCount), 0) != 1 || prefs.Flushes != 1 {
			t.Error("Init should persist level 1 for every upgrade")
		}
	})

	t.Run("later run loads", func(t *testing.T) {
		prefs := core.NewMemPrefs()
		prefs.PutInt(LevelKey(MovingSpeed), 4)
		e := NewEngine(specs)
		if err := e.Init(prefs); err != nil {
			t.Fatal(err)
		}
		if u, _ := e.Get(MovingSpeed); u.Level() != 4 {
			t.Errorf("Moving Speed level = %d, want 4", u.Level())
		}
		if prefs.Flushes != 0 {
			t.Error("loading must not write")
		}
	})
}

func TestEngineResetAndLookup(t *testing.T) {
	prefs := core.NewMemPrefs()
	e := NewEngine(config.DefaultGameConfig().Upgrades)
	u, _ := e.Get(CoinSpawnRate)
	u.Upgrade()
	u.Upgrade()

	if err := e.ResetToLevelOne(prefs); err != nil {
		t.Fatal(err)
	}
	if u.Level() != 1 || prefs.GetInt(LevelKey(CoinSpawnRate), 0) != 1 {
		t.Error("ResetToLevelOne should reset and persist level 1")
	}

	if got := e.ValueOr("Teleport", 7); got != 7 {
		t.Errorf("ValueOr missing = %v, want fallback 7", got)
	}
	if got := e.ValueOr(MovingSpeed, 200); got != 300 {
		t.Errorf("ValueOr Moving Speed = %v, want 300", got)
	}
	if len(e.Levels()) != 8 {
		t.Errorf("Levels() has %d entries, want 8", len(e.Levels()))
	}
}
