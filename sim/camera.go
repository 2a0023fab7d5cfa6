package sim

// Near and far planes of the orthographic projection volume.
const (
	cameraNear = 0.1
	cameraFar  = 2000.0
)

// Camera holds the projection state derived from the render surface size.
// It is owned by the Simulation, rebuilt by the viewport pass, and
// read-only to the renderer. Screen space runs left-to-right on x and
// top-down on y, so the projected volume spans [0, w] by [-h, 0].
type Camera struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32

	// Aspect is width/height of the surface the projection was built from.
	Aspect float32

	// FOVY is the vertical field of view in radians. Zero unless the
	// simulation was configured with a base FOV.
	FOVY float32

	// Generation increments on every rebuild. A renderer can compare
	// generations to skip re-uploading an unchanged projection.
	Generation uint64
}

func rebuildCamera(c *Camera, size SurfaceSize, baseFOV float32) {
	c.Left, c.Right = 0, size.Width
	c.Bottom, c.Top = 0, -size.Height
	c.Near, c.Far = cameraNear, cameraFar
	c.Aspect = size.Width / size.Height
	if baseFOV > 0 {
		c.FOVY = baseFOV
	}
	c.Generation++
}
