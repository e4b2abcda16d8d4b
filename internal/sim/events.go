package sim

// Event is one message for the engine's dispatcher. Exactly two things can
// happen to the engine: an animation frame elapses, or a requested random
// draw arrives.
type Event interface{ isEvent() }

// Frame advances the simulation by the elapsed seconds since the previous
// frame.
type Frame struct {
	Elapsed float64
}

// PlanReady resolves an earlier plan request with a fresh random draw.
type PlanReady struct {
	Draw []float64
}

func (Frame) isEvent()     {}
func (PlanReady) isEvent() {}
