package sim

// BouncePass reflects bodies off the arena walls. A body past an edge
// moving outward is clamped just inside the bound and its velocity
// component negated. Axes are tested independently every tick; a body out
// of bounds on both axes is corrected on both in the same pass.
//
// The outward-velocity condition makes the pass idempotent: a body
// already clamped to an edge is left alone until movement carries it out
// again.
type BouncePass struct{}

// Execute applies boundary reflection in parallel chunks over the store.
func (b *BouncePass) Execute(frame *Frame) {
	width := frame.Arena.Width
	height := frame.Arena.Height

	st := frame.Store
	frame.Pool.ForChunks(st.Len(), func(start, end int) {
		for i := start; i < end; i++ {
			if st.posY[i] >= height && st.velY[i] > 0 {
				st.posY[i] = height - 1.0
				st.velY[i] = -st.velY[i]
			}
			if st.posY[i] <= 0 && st.velY[i] < 0 {
				st.posY[i] = 0
				st.velY[i] = -st.velY[i]
			}

			if st.posX[i] >= width && st.velX[i] > 0 {
				st.posX[i] = width - 1.0
				st.velX[i] = -st.velX[i]
			}
			if st.posX[i] <= 0 && st.velX[i] < 0 {
				st.posX[i] = 0
				st.velX[i] = -st.velX[i]
			}
		}
	})
}
