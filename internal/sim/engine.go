package sim

import (
	"github.com/mselway/skyrocket/internal/plan"
	"github.com/mselway/skyrocket/internal/rocket"
)

// Engine owns the pool of live rockets and advances it one tick per frame.
type Engine struct {
	phys     rocket.Physics
	rockets  []rocket.Rocket
	time     float64
	launches int
	metrics  []Metric
}

func New(phys rocket.Physics) *Engine {
	return &Engine{
		phys:    phys,
		rockets: make([]rocket.Rocket, 0, 4),
		metrics: make([]Metric, 0),
	}
}

func (e *Engine) AddMetric(m Metric) { e.metrics = append(e.metrics, m) }

// Physics returns the parameter set new launches fly with.
func (e *Engine) Physics() rocket.Physics { return e.phys }

// Launch adds a rocket flying the given schedule to the pool.
func (e *Engine) Launch(p plan.Plan) {
	e.rockets = append(e.rockets, rocket.New(p, e.phys))
	e.launches++
}

// Tick advances every rocket by the elapsed seconds, drops the ones that
// fell below the ground line, and reports whether a new plan should be
// requested. The request is decided on the pool as it was before this
// update, so the frame that lands the last rocket never asks for a
// replacement itself; the next frame does.
func (e *Engine) Tick(elapsed float64) bool {
	requestPlan := len(e.rockets) == 0

	for i := range e.rockets {
		e.rockets[i] = e.rockets[i].Step(elapsed, e.phys)
	}

	kept := e.rockets[:0]
	for _, r := range e.rockets {
		if r.Y >= 0 {
			kept = append(kept, r)
		}
	}
	e.rockets = kept
	e.time += elapsed

	e.observe()
	return requestPlan
}

// Dispatch feeds one event through the engine. The return value mirrors
// Tick: true when the host should go fetch a draw for a new plan.
func (e *Engine) Dispatch(ev Event) bool {
	switch ev := ev.(type) {
	case Frame:
		return e.Tick(ev.Elapsed)
	case PlanReady:
		p, _ := plan.Generate(ev.Draw)
		e.Launch(p)
	}
	return false
}

func (e *Engine) observe() {
	if len(e.metrics) == 0 {
		return
	}
	// this view shares the live pool; metrics must not retain it
	snap := Snapshot{Time: e.time, Launches: e.launches, Rockets: e.rockets}
	for _, m := range e.metrics {
		m.Observe(snap)
	}
}

// Snapshot returns a copy of the pool safe to hold across frames.
func (e *Engine) Snapshot() Snapshot {
	rockets := make([]rocket.Rocket, len(e.rockets))
	copy(rockets, e.rockets)
	return Snapshot{Time: e.time, Launches: e.launches, Rockets: rockets}
}

// ResetMetrics zeroes every attached metric.
func (e *Engine) ResetMetrics() {
	for _, m := range e.metrics {
		m.Reset()
	}
}

// MetricValues returns the current value of every attached metric.
func (e *Engine) MetricValues() map[string]float64 {
	vals := make(map[string]float64, len(e.metrics))
	for _, m := range e.metrics {
		vals[m.Name()] = m.Value()
	}
	return vals
}
