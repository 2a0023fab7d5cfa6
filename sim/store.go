package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/bounce/sim/assets"
)

// Store holds every live body in structure-of-arrays layout so the
// per-tick passes iterate dense float32 slices. Bodies are created in
// bulk at simulation start and never despawned.
type Store struct {
	posX, posY []float32
	velX, velY []float32
	sprites    []assets.SpriteID
}

// NewStore creates an empty body store.
func NewStore() *Store {
	return &Store{}
}

// Spawn appends a single body with explicit state and returns its index.
func (s *Store) Spawn(x, y, vx, vy float32, sprite assets.SpriteID) int {
	s.posX = append(s.posX, x)
	s.posY = append(s.posY, y)
	s.velX = append(s.velX, vx)
	s.velY = append(s.velY, vy)
	s.sprites = append(s.sprites, sprite)
	return len(s.posX) - 1
}

// SpawnBodies bulk-creates count bodies at the arena center. Velocity
// components are drawn uniformly from [-velocityRange, velocityRange]
// on each axis.
func (s *Store) SpawnBodies(count int, arena Arena, velocityRange float32, sprite assets.SpriteID, rng *rand.Rand) error {
	if count < 0 {
		return fmt.Errorf("spawn count must be non-negative, got %d", count)
	}
	if arena.Width <= 0 || arena.Height <= 0 {
		return fmt.Errorf("arena extents must be positive, got %gx%g", arena.Width, arena.Height)
	}

	cx, cy := arena.Center()
	for i := 0; i < count; i++ {
		vx := (rng.Float32()*2 - 1) * velocityRange
		vy := (rng.Float32()*2 - 1) * velocityRange
		s.Spawn(cx, cy, vx, vy, sprite)
	}
	return nil
}

// Len returns the number of live bodies.
func (s *Store) Len() int {
	return len(s.posX)
}

// Positions returns the per-axis position slices. The slices alias the
// store's backing arrays: safe to read between ticks, never during one.
func (s *Store) Positions() (xs, ys []float32) {
	return s.posX, s.posY
}

// Velocities returns the per-axis velocity slices, with the same aliasing
// contract as Positions.
func (s *Store) Velocities() (xs, ys []float32) {
	return s.velX, s.velY
}

// Sprites returns the per-body sprite handles.
func (s *Store) Sprites() []assets.SpriteID {
	return s.sprites
}
