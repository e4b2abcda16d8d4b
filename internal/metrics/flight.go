package metrics

import (
	"math"

	"github.com/mselway/skyrocket/internal/sim"
)

// Drift tracks how far sideways any rocket wandered from the pad.
type Drift struct {
	name string
	max  float64
}

func NewDrift() *Drift {
	return &Drift{name: "drift"}
}

func (d *Drift) Name() string {
	return d.name
}

func (d *Drift) Observe(s sim.Snapshot) {
	for _, r := range s.Rockets {
		if x := math.Abs(r.X); x > d.max {
			d.max = x
		}
	}
}

func (d *Drift) Value() float64 {
	return d.max
}

func (d *Drift) Reset() {
	d.max = 0
}

// TimeAloft accumulates the simulated seconds during which at least one
// rocket was flying.
type TimeAloft struct {
	name  string
	last  float64
	total float64
}

func NewTimeAloft() *TimeAloft {
	return &TimeAloft{name: "time_aloft"}
}

func (t *TimeAloft) Name() string {
	return t.name
}

func (t *TimeAloft) Observe(s sim.Snapshot) {
	dt := s.Time - t.last
	t.last = s.Time
	if len(s.Rockets) > 0 {
		t.total += dt
	}
}

func (t *TimeAloft) Value() float64 {
	return t.total
}

func (t *TimeAloft) Reset() {
	t.last = 0
	t.total = 0
}

// Flights reports how many rockets have been launched so far.
type Flights struct {
	name     string
	launches int
}

func NewFlights() *Flights {
	return &Flights{name: "flights"}
}

func (f *Flights) Name() string {
	return f.name
}

func (f *Flights) Observe(s sim.Snapshot) {
	f.launches = s.Launches
}

func (f *Flights) Value() float64 {
	return float64(f.launches)
}

func (f *Flights) Reset() {
	f.launches = 0
}
