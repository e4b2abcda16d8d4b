package metrics

import (
	"github.com/mselway/skyrocket/internal/sim"
)

// Apex tracks the highest altitude any rocket reached.
type Apex struct {
	name string
	max  float64
}

func NewApex() *Apex {
	return &Apex{name: "apex"}
}

func (a *Apex) Name() string { return a.name }

func (a *Apex) Observe(s sim.Snapshot) {
	for _, r := range s.Rockets {
		if r.Y > a.max {
			a.max = r.Y
		}
	}
}

func (a *Apex) Value() float64 { return a.max }

func (a *Apex) Reset() { a.max = 0 }

// TopSpeed tracks the fastest velocity magnitude any rocket reached.
type TopSpeed struct {
	name string
	max  float64
}

func NewTopSpeed() *TopSpeed {
	return &TopSpeed{name: "top_speed"}
}

func (t *TopSpeed) Name() string { return t.name }

func (t *TopSpeed) Observe(s sim.Snapshot) {
	for _, r := range s.Rockets {
		if v := r.Speed(); v > t.max {
			t.max = v
		}
	}
}

func (t *TopSpeed) Value() float64 { return t.max }

func (t *TopSpeed) Reset() { t.max = 0 }
