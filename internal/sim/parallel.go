package sim

import (
	"context"
	"sync"
)

// Ensemble runs several independent simulations concurrently, one
// world per run. Each world stays single-threaded; no particle is ever
// shared across runs, so the per-step sequencing contract holds inside
// every goroutine. Used for parameter sweeps such as comparing shot
// types.
type Ensemble struct {
	build   func(run int) *Simulator
	numRuns int
}

// NewEnsemble returns an ensemble of numRuns simulations. build must
// return a fresh Simulator with its own World for each run index.
func NewEnsemble(build func(run int) *Simulator, numRuns int) *Ensemble {
	return &Ensemble{build: build, numRuns: numRuns}
}

// Run executes all runs and returns their results in run order. The
// first run error aborts the whole ensemble.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = e.build(idx).Run(ctx, cfg)
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
