package sim_test

import (
	"testing"

	"github.com/plus3/bounce/sim"
)

func newTestPool(t testing.TB, workers int) *sim.Pool {
	t.Helper()
	pool := sim.NewPool(workers)
	t.Cleanup(pool.Close)
	return pool
}

func newTestFrame(t testing.TB, store *sim.Store, arena sim.Arena, dt float32) *sim.Frame {
	t.Helper()
	return &sim.Frame{
		DeltaTime: dt,
		Store:     store,
		Arena:     arena,
		Camera:    &sim.Camera{},
		Pool:      newTestPool(t, 0),
	}
}

func mustArena(t testing.TB, width, height float32) sim.Arena {
	t.Helper()
	arena, err := sim.NewArena(width, height)
	if err != nil {
		t.Fatalf("NewArena(%g, %g): %v", width, height, err)
	}
	return arena
}
