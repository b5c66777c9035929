package sim

import (
	"context"
	"sync"

	"github.com/san-kum/spinwheel/internal/wheel"
)

// Ensemble runs N seeded wheels in parallel. Each run gets its own wheel
// from the factory and its own metric instances, so runs never share state.
type Ensemble struct {
	factory   func(seed int64) *wheel.Wheel
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

func NewEnsemble(factory func(seed int64) *wheel.Wheel, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: factory, numRuns: numRuns, seedStart: seedStart}
}

// SetMetrics installs a factory producing fresh metrics per run.
func (e *Ensemble) SetMetrics(f func() []Metric) { e.metrics = f }

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			cfgCopy := cfg
			cfgCopy.Seed = seed

			r := New(e.factory(seed))
			if e.metrics != nil {
				for _, m := range e.metrics() {
					r.AddMetric(m)
				}
			}

			results[idx], errs[idx] = r.Run(ctx, cfgCopy)
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
