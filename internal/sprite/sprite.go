// Package sprite provides the sprite catalog: the collision size and the
// terminal look of every drawable kind.
// The catalog is built once at startup and injected into the session,
// so lookups never fail once a run has started.
package sprite

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
)

// ID identifies a sprite kind.
type ID string

// Sprite kinds drawn by the simulation.
const (
	Player        ID = "player"
	PlayerAttack  ID = "player_attack"
	Skeleton      ID = "skeleton"
	SkeletonLight ID = "skeleton_light"
	SkeletonGray  ID = "skeleton_gray"
	BatBlack      ID = "bat_black"
	BatBrown      ID = "bat_brown"
	Rock          ID = "rock"
	FireSlash     ID = "fire_slash"
	Heart         ID = "heart"
	CoinGold      ID = "coin_gold"
	CoinRuby      ID = "coin_ruby"
	CoinSapphire  ID = "coin_sapphire"
	Platform      ID = "platform"
	CoinBonus     ID = "coin_bonus"
)

// Required lists every sprite kind the simulation may draw or collide.
func Required() []ID {
	return []ID{
		Player, PlayerAttack,
		Skeleton, SkeletonLight, SkeletonGray,
		BatBlack, BatBrown, Rock,
		FireSlash, Heart,
		CoinGold, CoinRuby, CoinSapphire,
		Platform, CoinBonus,
	}
}

// Info describes one sprite kind.
type Info struct {
	ID     ID
	Width  float64
	Height float64
	Glyph  rune
	Color  core.Color
}

// Provider answers sprite-size lookups for collision bounds.
type Provider interface {
	Size(id ID) (w, h float64)
}

// Catalog is a thread-safe map of sprite kinds.
// The SSH server shares one catalog between sessions.
type Catalog struct {
	mu      sync.RWMutex
	sprites map[ID]Info
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{sprites: make(map[ID]Info)}
}

// FromConfig builds a catalog from the sprites section of the configuration.
func FromConfig(specs []config.SpriteSpec) (*Catalog, error) {
	c := NewCatalog()
	for _, s := range specs {
		glyph, _ := utf8.DecodeRuneInString(s.Glyph)
		if glyph == utf8.RuneError {
			glyph = '?'
		}
		info := Info{
			ID:     ID(s.Name),
			Width:  s.Width,
			Height: s.Height,
			Glyph:  glyph,
			Color:  core.ParseColor(s.Color),
		}
		if err := c.Register(info); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds a sprite kind to the catalog.
// Returns an error if the kind is already registered.
func (c *Catalog) Register(info Info) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.sprites[info.ID]; exists {
		return fmt.Errorf("sprite: %q already registered", info.ID)
	}
	c.sprites[info.ID] = info
	return nil
}

// Lookup returns the sprite info for id.
func (c *Catalog) Lookup(id ID) (Info, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.sprites[id]
	return info, ok
}

// Size returns the collision size of a sprite kind, or zero for unknown kinds.
func (c *Catalog) Size(id ID) (float64, float64) {
	info, _ := c.Lookup(id)
	return info.Width, info.Height
}

// List returns all registered sprites, sorted by ID.
func (c *Catalog) List() []Info {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Info, 0, len(c.sprites))
	for _, info := range c.sprites {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Validate reports every required sprite that is missing or has no area.
func (c *Catalog) Validate() error {
	var errs []error
	for _, id := range Required() {
		info, ok := c.Lookup(id)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("sprite: %q missing", id))
		case info.Width <= 0 || info.Height <= 0:
			errs = append(errs, fmt.Errorf("sprite: %q has non-positive size %vx%v", id, info.Width, info.Height))
		}
	}
	return errors.Join(errs...)
}
