package sim

import "fmt"

// Arena is the rectangular bounds within which bodies move and reflect.
// Extents are fixed for a run unless the owning Simulation tracks the
// render surface, in which case the effective arena follows the last
// reported surface size.
type Arena struct {
	Width, Height float32
}

// NewArena validates the extents and returns the arena.
func NewArena(width, height float32) (Arena, error) {
	if width <= 0 || height <= 0 {
		return Arena{}, fmt.Errorf("arena extents must be positive, got %gx%g", width, height)
	}
	return Arena{Width: width, Height: height}, nil
}

// Center returns the arena midpoint, where bodies spawn.
func (a Arena) Center() (x, y float32) {
	return a.Width / 2, a.Height / 2
}
