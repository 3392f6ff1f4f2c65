package entity

import "github.com/vovakirdan/knight-run/internal/sprite"

// Family groups enemy kinds that share behaviour.
type Family uint8

const (
	FamilySkeleton Family = iota // Walks along the ground
	FamilyBat                    // Flies and drops rocks
)

// EnemyKind is a concrete enemy variant.
type EnemyKind uint8

const (
	SkeletonStandard EnemyKind = iota
	SkeletonLight
	SkeletonGray
	BatBlack
	BatBrown
)

// EnemyTraits are the static capabilities of an enemy kind.
type EnemyTraits struct {
	Name       string
	Family     Family
	Sprite     sprite.ID
	BaseHealth int
	BaseDamage int // Contact damage dealt to the player
	XPReward   int // Before the experience multiplier
}

var enemyTraits = [...]EnemyTraits{
	SkeletonStandard: {Name: "standard", Family: FamilySkeleton, Sprite: sprite.Skeleton, BaseHealth: 3, BaseDamage: 1, XPReward: 10},
	SkeletonLight:    {Name: "light", Family: FamilySkeleton, Sprite: sprite.SkeletonLight, BaseHealth: 2, BaseDamage: 1, XPReward: 10},
	SkeletonGray:     {Name: "gray", Family: FamilySkeleton, Sprite: sprite.SkeletonGray, BaseHealth: 4, BaseDamage: 1, XPReward: 10},
	BatBlack:         {Name: "black", Family: FamilyBat, Sprite: sprite.BatBlack, BaseHealth: 3, BaseDamage: 1, XPReward: 5},
	BatBrown:         {Name: "brown", Family: FamilyBat, Sprite: sprite.BatBrown, BaseHealth: 4, BaseDamage: 1, XPReward: 5},
}

// Traits returns the capability row for k.
func (k EnemyKind) Traits() EnemyTraits {
	return enemyTraits[k]
}

// String returns the kind name within its family.
func (k EnemyKind) String() string {
	if int(k) >= len(enemyTraits) {
		return "unknown"
	}
	return enemyTraits[k].Name
}

// EnemyKindsOf returns the kinds of a family in table order.
func EnemyKindsOf(f Family) []EnemyKind {
	var kinds []EnemyKind
	for k := range enemyTraits {
		if enemyTraits[k].Family == f {
			kinds = append(kinds, EnemyKind(k))
		}
	}
	return kinds
}

// ParseEnemyKind finds a kind by family and name.
func ParseEnemyKind(f Family, name string) (EnemyKind, bool) {
	for _, k := range EnemyKindsOf(f) {
		if enemyTraits[k].Name == name {
			return k, true
		}
	}
	return 0, false
}

// CoinKind is a coin rarity tier.
type CoinKind uint8

const (
	CoinGold CoinKind = iota
	CoinRuby
	CoinSapphire
)

var coinTraits = [...]struct {
	name   string
	value  int
	sprite sprite.ID
}{
	CoinGold:     {"gold", 1, sprite.CoinGold},
	CoinRuby:     {"ruby", 5, sprite.CoinRuby},
	CoinSapphire: {"sapphire", 10, sprite.CoinSapphire},
}

// Value returns the currency awarded on pickup.
func (k CoinKind) Value() int {
	return coinTraits[k].value
}

// Sprite returns the sprite drawn for this tier.
func (k CoinKind) Sprite() sprite.ID {
	return coinTraits[k].sprite
}

func (k CoinKind) String() string {
	if int(k) >= len(coinTraits) {
		return "unknown"
	}
	return coinTraits[k].name
}
