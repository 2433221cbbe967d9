package engine

// Tick is the time input handed to every per-frame operation. Time is the
// simulation clock at this tick and Delta the seconds elapsed since the
// previous tick on the same path (variable or fixed).
type Tick struct {
	Time  float64
	Delta float64
}

// Step returns the tick that follows t after delta seconds.
func (t Tick) Step(delta float64) Tick {
	return Tick{Time: t.Time + delta, Delta: delta}
}
