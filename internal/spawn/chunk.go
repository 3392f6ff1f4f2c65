package spawn

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/entity"
)

// ChunkSpawner lays out platforms in pre-authored chunks ahead of the
// player and scrolls them with the world.
type ChunkSpawner struct {
	cfg         config.PlatformsConfig
	rng         *rand.Rand
	items       *entity.Registry[entity.Platform]
	groundY     float64
	minY        float64 // Lowest allowed platform y
	nextX       float64
	chunks      int
	lastPattern string
}

// NewChunkSpawner creates a chunk spawner. groundPlatformHeight is the
// height of the platform sprite standing on the ground.
func NewChunkSpawner(cfg config.PlatformsConfig, groundY, groundPlatformHeight float64, rng *rand.Rand) *ChunkSpawner {
	return &ChunkSpawner{
		cfg:     cfg,
		rng:     rng,
		items:   entity.NewRegistry[entity.Platform](32),
		groundY: groundY,
		minY:    groundY + groundPlatformHeight + cfg.Clearance,
	}
}

// Reset clears all platforms and rewinds the chunk threshold.
func (c *ChunkSpawner) Reset() {
	c.items.Clear()
	c.nextX = 0
	c.chunks = 0
	c.lastPattern = ""
}

// Update scrolls platforms left by cutoffSpeed*dt, culls the ones behind
// the world edge and spawns the next chunk once the player's right edge
// passes the threshold.
func (c *ChunkSpawner) Update(dt, cutoffSpeed float64, f Frame) []*entity.Platform {
	shift := cutoffSpeed * dt
	c.items.Each(func(p *entity.Platform) {
		p.X -= shift
	})
	c.Cull(f.WorldLeft)

	if f.PlayerRight > c.nextX {
		return c.SpawnChunk(f)
	}
	return nil
}

// SpawnChunk places a random pattern at max(threshold, camera right + lead)
// and moves the threshold to the chunk's right edge.
func (c *ChunkSpawner) SpawnChunk(f Frame) []*entity.Platform {
	if len(c.cfg.Patterns) == 0 {
		return nil
	}
	pattern := c.cfg.Patterns[c.rng.Intn(len(c.cfg.Patterns))]
	offset := math.Max(c.nextX, f.CameraRight+c.cfg.Lead)

	placed := make([]*entity.Platform, 0, len(pattern.Platforms))
	right := 0.0
	for _, spec := range pattern.Platforms {
		p := &entity.Platform{
			X: offset + spec.X,
			Y: math.Max(spec.Y, c.minY),
			W: spec.Width,
			H: spec.Height,
		}
		c.items.Add(p)
		placed = append(placed, p)
		right = math.Max(right, spec.X+spec.Width)
	}

	c.nextX = offset + right
	c.chunks++
	c.lastPattern = pattern.Name
	return placed
}

// Cull removes elevated platforms whose right edge fell behind worldLeft
// minus the margin. Ground-level platforms stay.
func (c *ChunkSpawner) Cull(worldLeft float64) int {
	limit := worldLeft - c.cfg.CullMargin
	return c.items.RemoveWhere(func(p *entity.Platform) bool {
		return p.Y > c.groundY && p.X+p.W < limit
	})
}

// Items returns the platform registry.
func (c *ChunkSpawner) Items() *entity.Registry[entity.Platform] {
	return c.items
}

// NextThreshold returns the x the player's right edge must pass.
func (c *ChunkSpawner) NextThreshold() float64 {
	return c.nextX
}

// Chunks returns how many chunks were placed since the last reset.
func (c *ChunkSpawner) Chunks() int {
	return c.chunks
}

// LastPattern returns the name of the most recent chunk pattern.
func (c *ChunkSpawner) LastPattern() string {
	return c.lastPattern
}
