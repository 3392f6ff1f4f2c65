package powerup

import (
	"testing"

	"github.com/vovakirdan/knight-run/internal/config"
)

func baseTuning() Tuning {
	return Tuning{
		CoinInterval:   1.0,
		RubyRate:       30,
		SapphireRate:   20,
		MoveSpeed:      300,
		AttackCooldown: 0.25,
	}
}

func TestApplyRevert(t *testing.T) {
	cfg := config.DefaultGameConfig().PowerUps

	tests := []struct {
		kind  Kind
		check func(Tuning) bool
	}{
		{CoinRush, func(t Tuning) bool { return t.CoinInterval == 0.1 && t.RubyRate == 15 && t.SapphireRate == 5 }},
		{Swiftness, func(t Tuning) bool { return t.MoveSpeed == 450 }},
		{Frenzy, func(t Tuning) bool { return t.AttackCooldown == 0.125 }},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			base := baseTuning()
			applied, d := Apply(tt.kind, cfg, base)
			if !tt.check(applied) {
				t.Errorf("Apply(%v) = %+v", tt.kind, applied)
			}
			if got := Revert(applied, d); got != base {
				t.Errorf("Revert = %+v, want %+v", got, base)
			}
		})
	}
}

func TestRevertOnlyTouchesOwnFields(t *testing.T) {
	cfg := config.DefaultGameConfig().PowerUps
	base := baseTuning()

	t1, swift := Apply(Swiftness, cfg, base)
	t2, frenzy := Apply(Frenzy, cfg, t1)

	// Expire in activation order
	got := Revert(t2, swift)
	if got.MoveSpeed != base.MoveSpeed || got.AttackCooldown != 0.125 {
		t.Errorf("after reverting swiftness: %+v", got)
	}
	if got = Revert(got, frenzy); got != base {
		t.Errorf("after reverting both: %+v, want %+v", got, base)
	}
}

func TestParseKind(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("invisibility"); ok {
		t.Error("unknown kind should not parse")
	}
}

func TestTrackerLifecycle(t *testing.T) {
	cfg := config.DefaultGameConfig().PowerUps
	tr := NewTracker(cfg)
	base := baseTuning()

	tuning, started := tr.Activate(CoinRush, base)
	if !started {
		t.Fatal("first activation should start the effect")
	}
	if tuning.CoinInterval != 0.1 {
		t.Errorf("CoinInterval = %v, want 0.1", tuning.CoinInterval)
	}

	// Run 9 of 10 seconds, then pick up again
	for i := 0; i < 90; i++ {
		var expired []Kind
		tuning, expired = tr.Update(0.1, tuning)
		if len(expired) > 0 {
			t.Fatalf("expired early at step %d", i)
		}
	}
	again, started := tr.Activate(CoinRush, tuning)
	if started {
		t.Error("re-pickup should refresh, not activate again")
	}
	if again != tuning {
		t.Error("re-pickup must not change tuning")
	}
	if r := tr.Remaining(CoinRush); r != cfg.CoinRush.Duration {
		t.Errorf("Remaining after refresh = %v, want %v", r, cfg.CoinRush.Duration)
	}

	expirations := 0
	for i := 0; i < 100; i++ {
		var expired []Kind
		tuning, expired = tr.Update(0.1, tuning)
		expirations += len(expired)
	}
	if expirations != 1 {
		t.Errorf("expired %d times, want exactly 1", expirations)
	}
	if tuning != base {
		t.Errorf("tuning after expiry = %+v, want %+v", tuning, base)
	}
	if tr.IsActive(CoinRush) {
		t.Error("CoinRush should be inactive")
	}
}

func TestTrackerRebaseAndClear(t *testing.T) {
	cfg := config.DefaultGameConfig().PowerUps
	tr := NewTracker(cfg)

	tuning, _ := tr.Activate(Swiftness, baseTuning())
	if tuning.MoveSpeed != 450 {
		t.Fatalf("MoveSpeed = %v, want 450", tuning.MoveSpeed)
	}

	upgraded := baseTuning()
	upgraded.MoveSpeed = 400
	tuning = tr.Rebase(upgraded)
	if tuning.MoveSpeed != 600 {
		t.Errorf("rebased MoveSpeed = %v, want 600", tuning.MoveSpeed)
	}

	if got := tr.Clear(tuning); got != upgraded {
		t.Errorf("Clear = %+v, want %+v", got, upgraded)
	}
	if len(tr.Active()) != 0 {
		t.Error("Clear should empty the tracker")
	}
}
