package delivery

import (
	"context"
	"sync"

	"github.com/kiran-v/nanosim/internal/design"
	"github.com/kiran-v/nanosim/internal/sim"
)

// Ensemble runs one design against one target over consecutive seeds.
// Runs are independent (no shared mutable state), so they execute in
// parallel goroutines.
type Ensemble struct {
	bot       *design.Nanobot
	target    sim.Vec
	numRuns   int
	seedStart int64
}

func NewEnsemble(bot *design.Nanobot, target sim.Vec, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{bot: bot, target: target, numRuns: numRuns, seedStart: seedStart}
}

// Run executes the ensemble. Results are ordered by seed offset.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = SimulateSeed(e.bot, e.target, e.seedStart+int64(idx))
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

// Summary aggregates an ensemble's outcomes.
type Summary struct {
	Runs            int     `json:"runs"`
	MeanSuccessRate float64 `json:"mean_success_rate"`
	ReachedFraction float64 `json:"reached_fraction"`
	MeanSteps       float64 `json:"mean_steps"`
}

func Summarize(results []*Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	var success, steps float64
	reached := 0
	for _, r := range results {
		success += r.SuccessRate
		steps += float64(r.Steps)
		if r.TargetReached {
			reached++
		}
	}

	n := float64(len(results))
	return Summary{
		Runs:            len(results),
		MeanSuccessRate: success / n,
		ReachedFraction: float64(reached) / n,
		MeanSteps:       steps / n,
	}
}
