package sim

import "github.com/mselway/skyrocket/internal/rocket"

// Snapshot is a read-only view of the engine handed to renderers and
// metrics after a frame.
type Snapshot struct {
	Time     float64
	Launches int
	Rockets  []rocket.Rocket
}

// Metric accumulates a named statistic over snapshots.
type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}
