package sim

// SurfaceSize is the logical size of the render surface.
type SurfaceSize struct {
	Width, Height float32
}

// IsZero reports whether the size has never been set.
func (s SurfaceSize) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// ViewportPass tracks the logical render surface size and rebuilds the
// camera projection once a new size has been observed twice in a row.
// The one-tick debounce avoids rebuilding camera state on every
// intermediate size during a window drag.
//
// The pass is a two-state machine: stable, or pending a rebuild. A size
// change moves it to pending and records the candidate; seeing the same
// size again confirms it and rebuilds; a different size while pending
// replaces the candidate without rebuilding.
type ViewportPass struct {
	last    SurfaceSize
	seen    bool
	pending bool
	baseFOV float32
}

// Execute samples the surface size and advances the debounce machine.
func (v *ViewportPass) Execute(frame *Frame) {
	size := frame.Surface
	if size.IsZero() {
		// Host has not reported a surface yet.
		return
	}

	if !v.seen || size != v.last {
		v.last = size
		v.seen = true
		v.pending = true
		return
	}

	if v.pending {
		rebuildCamera(frame.Camera, size, v.baseFOV)
		v.pending = false
	}
}
