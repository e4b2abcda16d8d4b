package sim

import (
	"context"
	"fmt"

	"github.com/mselway/skyrocket/internal/plan"
)

// Result collects the per-frame series and final statistics of a headless
// run. The series follow the oldest rocket in the pool and read zero while
// the pool is empty.
type Result struct {
	Times    []float64
	Altitude []float64
	Speed    []float64
	Fuel     []float64
	Steps    int
	Launches int
	Metrics  map[string]float64
}

// Runner drives an engine with a fixed timestep, resolving every plan
// request from its draw source before the next frame.
type Runner struct {
	engine *Engine
	source DrawSource
}

func NewRunner(e *Engine, src DrawSource) *Runner {
	return &Runner{engine: e, source: src}
}

func (r *Runner) Run(ctx context.Context, dt, duration float64) (*Result, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", dt)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", duration)
	}

	steps := int(duration / dt)
	result := &Result{
		Times:    make([]float64, 0, steps),
		Altitude: make([]float64, 0, steps),
		Speed:    make([]float64, 0, steps),
		Fuel:     make([]float64, 0, steps),
		Metrics:  make(map[string]float64),
	}

	r.engine.ResetMetrics()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if r.engine.Dispatch(Frame{Elapsed: dt}) {
			r.engine.Dispatch(PlanReady{Draw: r.source.Draw(plan.DrawLen)})
		}

		snap := r.engine.Snapshot()
		result.Times = append(result.Times, snap.Time)
		if len(snap.Rockets) > 0 {
			lead := snap.Rockets[0]
			result.Altitude = append(result.Altitude, lead.Y)
			result.Speed = append(result.Speed, lead.Speed())
			result.Fuel = append(result.Fuel, lead.Fuel)
		} else {
			result.Altitude = append(result.Altitude, 0)
			result.Speed = append(result.Speed, 0)
			result.Fuel = append(result.Fuel, 0)
		}
		result.Steps++
		result.Launches = snap.Launches
	}

	for name, val := range r.engine.MetricValues() {
		result.Metrics[name] = val
	}

	return result, nil
}
