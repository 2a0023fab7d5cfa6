package sim_test

import (
	"fmt"

	"github.com/plus3/bounce/sim"
)

// ExampleSimulation shows a minimal host loop: spawn bodies, tick, read
// positions back. The second body starts near the top wall and is
// reflected in the same tick its movement carries it out.
func ExampleSimulation() {
	arena, _ := sim.NewArena(100, 100)
	s, _ := sim.New(arena, sim.WithWorkers(1))
	defer s.Close()

	s.Store().Spawn(50, 50, 10, 5, 0)
	s.Store().Spawn(50, 99, 0, 20, 0)

	s.Tick(1.0)

	xs, ys := s.Store().Positions()
	for i := range xs {
		fmt.Printf("body %d: (%.0f, %.0f)\n", i, xs[i], ys[i])
	}

	// Output:
	// body 0: (60, 55)
	// body 1: (50, 99)
}

// ExampleSimulation_viewport shows the resize debounce: the camera is
// rebuilt only once a new surface size has been seen twice in a row.
func ExampleSimulation_viewport() {
	arena, _ := sim.NewArena(800, 600)
	s, _ := sim.New(arena, sim.WithWorkers(1))
	defer s.Close()

	s.SetSurfaceSize(1024, 768)
	s.Tick(0)
	fmt.Printf("after first observation: right=%.0f\n", s.Camera().Right)

	s.Tick(0)
	fmt.Printf("after second observation: right=%.0f\n", s.Camera().Right)

	// Output:
	// after first observation: right=800
	// after second observation: right=1024
}
