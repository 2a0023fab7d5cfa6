package sim

// MovementPass advances every body by its velocity scaled with the tick's
// delta time. Plain Euler integration, one step per tick, each axis
// independent. A zero delta is a no-op. Values are not guarded: a NaN or
// Inf entering a velocity propagates into the position.
type MovementPass struct{}

// Execute integrates positions in parallel chunks over the store.
func (m *MovementPass) Execute(frame *Frame) {
	dt := frame.DeltaTime
	if dt == 0 {
		return
	}

	st := frame.Store
	frame.Pool.ForChunks(st.Len(), func(start, end int) {
		for i := start; i < end; i++ {
			st.posX[i] += st.velX[i] * dt
			st.posY[i] += st.velY[i] * dt
		}
	})
}
