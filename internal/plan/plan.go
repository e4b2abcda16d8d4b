// Package plan turns a batch of random values into a rocket's thrust
// schedule. A schedule is fixed at launch and read-only afterwards.
package plan

// DrawLen is the number of random values a draw must deliver.
const DrawLen = 40

// Thrust is one left/right thruster magnitude pair.
type Thrust struct {
	Left  float64
	Right float64
}

// Plan maps a rocket's tick counter to the thruster pair applied from that
// tick on. Ticks absent from the plan keep the previous pair.
type Plan map[int]Thrust

// Generate builds a schedule from a draw of values uniform in [0,1000) and
// reports how many values it consumed. The first value picks the number of
// schedule entries (0-9); the next entries become tick indices after a fixed
// index 0, and the remaining consumed values split into left and right
// thrust magnitudes. A first value below 100 yields an empty plan, so the
// rocket flies on its launch thrusters until the fuel runs out.
func Generate(draw []float64) (Plan, int) {
	changes := int(draw[0] / 100)
	if changes == 0 {
		return Plan{}, 1
	}

	points := make([]int, 0, changes)
	points = append(points, 0)
	for i := 1; i < changes; i++ {
		points = append(points, int(draw[i]/10))
	}

	thrusts := make([]Thrust, 0, changes)
	for i := 0; i < changes; i++ {
		thrusts = append(thrusts, Thrust{
			Left:  draw[changes+i],
			Right: draw[2*changes+i],
		})
	}

	return Zip(points, thrusts), 3 * changes
}

// Zip pairs tick indices with thruster values positionally. The result is
// truncated to the shorter of the two slices, and duplicate tick indices
// keep the last pair assigned to them.
func Zip(points []int, thrusts []Thrust) Plan {
	n := len(points)
	if len(thrusts) < n {
		n = len(thrusts)
	}
	p := make(Plan, n)
	for i := 0; i < n; i++ {
		p[points[i]] = thrusts[i]
	}
	return p
}
