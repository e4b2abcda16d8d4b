package sim

import (
	"context"
	"sync"

	"github.com/mselway/skyrocket/internal/rocket"
)

// Ensemble runs many independently seeded flights in parallel. Every run
// gets its own engine and draw source, so each engine still sees a single
// serial event loop.
type Ensemble struct {
	phys      rocket.Physics
	numRuns   int
	seedStart int64
}

func NewEnsemble(phys rocket.Physics, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{phys: phys, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, dt, duration float64) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			engine := New(e.phys)
			runner := NewRunner(engine, NewSeededSource(e.seedStart+int64(idx)))
			results[idx], errs[idx] = runner.Run(ctx, dt, duration)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
