package sim

// Resource identifies a piece of simulation state a pass reads or writes.
// The scheduler uses these declarations to batch non-conflicting passes
// for concurrent execution.
type Resource uint32

const (
	ResourcePositions Resource = 1 << iota
	ResourceVelocities
	ResourceCamera
	ResourceSurface
)

// Frame carries the per-tick inputs shared by all passes. The delta time
// is supplied fresh each tick by the external frame driver and is never
// cached across ticks.
type Frame struct {
	DeltaTime float32
	Store     *Store
	Arena     Arena
	Surface   SurfaceSize
	Camera    *Camera
	Pool      *Pool
}

// Pass is one update stage executed by the Scheduler every tick.
// Passes may keep state fields that persist between frames.
type Pass interface {
	Execute(frame *Frame)
}

// PassOption declares scheduling metadata at registration time.
type PassOption func(*passNode)

// Reads declares resources the pass reads but does not mutate.
func Reads(resources ...Resource) PassOption {
	return func(node *passNode) {
		for _, r := range resources {
			node.reads |= r
		}
	}
}

// Writes declares resources the pass mutates.
func Writes(resources ...Resource) PassOption {
	return func(node *passNode) {
		for _, r := range resources {
			node.writes |= r
		}
	}
}
