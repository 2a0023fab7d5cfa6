package sim_test

import (
	"testing"

	"github.com/plus3/bounce/sim"
	"github.com/stretchr/testify/assert"
)

func TestBounceClampsHighEdge(t *testing.T) {
	arena := mustArena(t, 200, 100)
	store := sim.NewStore()
	store.Spawn(205, 50, 30, 0, 0)

	frame := newTestFrame(t, store, arena, 0)
	pass := &sim.BouncePass{}
	pass.Execute(frame)

	xs, _ := store.Positions()
	vxs, _ := store.Velocities()
	assert.Equal(t, float32(199), xs[0])
	assert.Equal(t, float32(-30), vxs[0])

	// Already inside and moving inward: a second pass changes nothing.
	pass.Execute(frame)
	assert.Equal(t, float32(199), xs[0])
	assert.Equal(t, float32(-30), vxs[0])
}

func TestBounceClampsLowEdge(t *testing.T) {
	arena := mustArena(t, 200, 100)
	store := sim.NewStore()
	store.Spawn(-5, 50, -30, 0, 0)

	frame := newTestFrame(t, store, arena, 0)
	pass := &sim.BouncePass{}
	pass.Execute(frame)

	xs, _ := store.Positions()
	vxs, _ := store.Velocities()
	assert.Equal(t, float32(0), xs[0])
	assert.Equal(t, float32(30), vxs[0])

	pass.Execute(frame)
	assert.Equal(t, float32(0), xs[0])
	assert.Equal(t, float32(30), vxs[0])
}

func TestBounceCorrectsBothAxes(t *testing.T) {
	arena := mustArena(t, 200, 100)
	store := sim.NewStore()
	store.Spawn(210, 110, 10, 20, 0)

	frame := newTestFrame(t, store, arena, 0)
	(&sim.BouncePass{}).Execute(frame)

	xs, ys := store.Positions()
	vxs, vys := store.Velocities()
	assert.Equal(t, float32(199), xs[0])
	assert.Equal(t, float32(99), ys[0])
	assert.Equal(t, float32(-10), vxs[0])
	assert.Equal(t, float32(-20), vys[0])
}

func TestBounceIgnoresBodiesInBounds(t *testing.T) {
	arena := mustArena(t, 200, 100)
	store := sim.NewStore()
	store.Spawn(100, 50, 30, -40, 0)

	frame := newTestFrame(t, store, arena, 0)
	(&sim.BouncePass{}).Execute(frame)

	xs, ys := store.Positions()
	vxs, vys := store.Velocities()
	assert.Equal(t, float32(100), xs[0])
	assert.Equal(t, float32(50), ys[0])
	assert.Equal(t, float32(30), vxs[0])
	assert.Equal(t, float32(-40), vys[0])
}

func TestBounceIgnoresInwardVelocityAtEdge(t *testing.T) {
	arena := mustArena(t, 200, 100)
	store := sim.NewStore()
	store.Spawn(0, 100, 5, -5, 0) // on the left edge moving right, on the top edge moving down

	frame := newTestFrame(t, store, arena, 0)
	(&sim.BouncePass{}).Execute(frame)

	xs, ys := store.Positions()
	vxs, vys := store.Velocities()
	assert.Equal(t, float32(0), xs[0])
	assert.Equal(t, float32(100), ys[0])
	assert.Equal(t, float32(5), vxs[0])
	assert.Equal(t, float32(-5), vys[0])
}
