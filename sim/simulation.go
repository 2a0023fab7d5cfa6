package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/bounce/sim/assets"
)

// Simulation owns the body store, the camera state, and the pass schedule.
// Nothing else holds a mutable reference to either: the host drives ticks
// and reads results through the accessors between them.
//
// Per tick, movement and the viewport tracker run concurrently (they share
// no state), then bounce runs behind a barrier so it reads fully
// integrated positions.
type Simulation struct {
	store     *Store
	arena     Arena
	camera    Camera
	surface   SurfaceSize
	pool      *Pool
	scheduler *Scheduler
	rng       *rand.Rand

	trackSurface bool
	baseFOV      float32
}

// Option configures a Simulation at construction.
type Option func(*Simulation)

// WithWorkers sets the worker pool size. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Simulation) {
		s.pool = NewPool(n)
	}
}

// WithSeed makes body spawning deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithSurfaceArena makes the effective arena follow the last reported
// surface size, so bodies bounce off the window edges. Until a size is
// reported the constructed arena applies.
func WithSurfaceArena() Option {
	return func(s *Simulation) {
		s.trackSurface = true
	}
}

// WithBaseFOV sets a vertical field of view, in radians, carried on the
// camera through rebuilds.
func WithBaseFOV(radians float32) Option {
	return func(s *Simulation) {
		s.baseFOV = radians
	}
}

// New creates a simulation bounded by the given arena.
func New(arena Arena, opts ...Option) (*Simulation, error) {
	if arena.Width <= 0 || arena.Height <= 0 {
		return nil, fmt.Errorf("arena extents must be positive, got %gx%g", arena.Width, arena.Height)
	}

	s := &Simulation{
		store: NewStore(),
		arena: arena,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pool == nil {
		s.pool = NewPool(0)
	}

	// Initial projection from the arena, before any surface report.
	rebuildCamera(&s.camera, SurfaceSize{Width: arena.Width, Height: arena.Height}, s.baseFOV)

	s.scheduler = NewScheduler()
	s.scheduler.Register(&MovementPass{},
		Reads(ResourceVelocities), Writes(ResourcePositions))
	s.scheduler.Register(&ViewportPass{baseFOV: s.baseFOV},
		Reads(ResourceSurface), Writes(ResourceCamera))
	s.scheduler.Register(&BouncePass{},
		Writes(ResourcePositions, ResourceVelocities))
	s.scheduler.Compile()

	return s, nil
}

// SpawnBodies bulk-creates count bodies at the arena center with velocity
// components drawn uniformly from [-velocityRange, velocityRange].
func (s *Simulation) SpawnBodies(count int, velocityRange float32, sprite assets.SpriteID) error {
	return s.store.SpawnBodies(count, s.arena, velocityRange, sprite, s.rng)
}

// Tick advances the simulation by one frame. dt is the elapsed time in
// seconds since the previous tick and must be >= 0; zero is a no-op for
// movement. Not safe to call concurrently with the accessors.
func (s *Simulation) Tick(dt float32) {
	frame := &Frame{
		DeltaTime: dt,
		Store:     s.store,
		Arena:     s.effectiveArena(),
		Surface:   s.surface,
		Camera:    &s.camera,
		Pool:      s.pool,
	}
	s.scheduler.Once(frame)
}

// Run ticks the simulation at the given interval, with measured delta
// times, until the context is cancelled.
func (s *Simulation) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Tick(float32(dt))
		}
	}
}

// SetSurfaceSize records the host's logical render surface size, read by
// the viewport pass on the next tick. Call it from the host's layout or
// resize callback, never concurrently with Tick.
func (s *Simulation) SetSurfaceSize(width, height float32) {
	s.surface = SurfaceSize{Width: width, Height: height}
}

func (s *Simulation) effectiveArena() Arena {
	if s.trackSurface && !s.surface.IsZero() {
		return Arena{Width: s.surface.Width, Height: s.surface.Height}
	}
	return s.arena
}

// Arena returns the bounds in effect for the next tick.
func (s *Simulation) Arena() Arena {
	return s.effectiveArena()
}

// Store returns the body store. Read-only between ticks.
func (s *Simulation) Store() *Store {
	return s.store
}

// Camera returns a copy of the current camera state.
func (s *Simulation) Camera() Camera {
	return s.camera
}

// Stats returns per-pass execution statistics.
func (s *Simulation) Stats() *SchedulerStats {
	return s.scheduler.GetStats()
}

// Close releases the worker pool. The simulation must not tick after
// Close.
func (s *Simulation) Close() {
	s.pool.Close()
}
