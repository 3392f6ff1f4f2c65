package entity

import (
	"testing"

	"github.com/vovakirdan/knight-run/internal/sprite"
)

type fixedSizes struct{ w, h float64 }

func (f fixedSizes) Size(sprite.ID) (float64, float64) { return f.w, f.h }

func TestEnemyTraits(t *testing.T) {
	tests := []struct {
		kind   EnemyKind
		family Family
		health int
		xp     int
		sprite sprite.ID
	}{
		{SkeletonStandard, FamilySkeleton, 3, 10, sprite.Skeleton},
		{SkeletonLight, FamilySkeleton, 2, 10, sprite.SkeletonLight},
		{SkeletonGray, FamilySkeleton, 4, 10, sprite.SkeletonGray},
		{BatBlack, FamilyBat, 3, 5, sprite.BatBlack},
		{BatBrown, FamilyBat, 4, 5, sprite.BatBrown},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tr := tt.kind.Traits()
			if tr.Family != tt.family || tr.BaseHealth != tt.health || tr.XPReward != tt.xp || tr.Sprite != tt.sprite {
				t.Errorf("Traits() = %+v", tr)
			}
			e := NewEnemy(tt.kind, 0, 0, -60)
			if e.Health != tt.health {
				t.Errorf("NewEnemy health = %d, want %d", e.Health, tt.health)
			}
		})
	}
}

func TestParseEnemyKind(t *testing.T) {
	if k, ok := ParseEnemyKind(FamilyBat, "brown"); !ok || k != BatBrown {
		t.Errorf("ParseEnemyKind(bat, brown) = %v, %v", k, ok)
	}
	if _, ok := ParseEnemyKind(FamilySkeleton, "brown"); ok {
		t.Error("brown is not a skeleton kind")
	}
	if got := len(EnemyKindsOf(FamilySkeleton)); got != 3 {
		t.Errorf("skeleton kinds = %d, want 3", got)
	}
}

func TestEnemyTakeDamage(t *testing.T) {
	e := NewEnemy(SkeletonStandard, 0, 100, -60)
	if e.TakeDamage(2, 0.2) {
		t.Error("3 hp enemy should survive 2 damage")
	}
	if e.Health != 1 || !e.IsBlinking() {
		t.Errorf("after hit: health=%d blinking=%v", e.Health, e.IsBlinking())
	}
	e.Blink.Tick(0.2)
	if e.IsBlinking() {
		t.Error("blink should clear after its duration")
	}
	if !e.TakeDamage(1, 0.2) {
		t.Error("enemy should die at 0 hp")
	}
}

func TestCoinKinds(t *testing.T) {
	tests := []struct {
		kind  CoinKind
		value int
		name  string
	}{
		{CoinGold, 1, "gold"},
		{CoinRuby, 5, "ruby"},
		{CoinSapphire, 10, "sapphire"},
	}
	for _, tt := range tests {
		if tt.kind.Value() != tt.value || tt.kind.String() != tt.name {
			t.Errorf("%v: value=%d name=%s", tt.kind, tt.kind.Value(), tt.kind.String())
		}
	}
}

func TestBounds(t *testing.T) {
	sizes := fixedSizes{w: 10, h: 20}
	r := (&Rock{X: 5, Y: 7}).Bounds(sizes)
	if r.X != 5 || r.Y != 7 || r.W != 10 || r.H != 20 {
		t.Errorf("Rock bounds = %+v", r)
	}
	p := &Platform{X: 0, Y: 240, W: 120, H: 16}
	if p.Top() != 256 {
		t.Errorf("Platform top = %v, want 256", p.Top())
	}
}
