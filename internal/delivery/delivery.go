// Package delivery orchestrates full simulation runs: design in,
// scored trajectory out. It also provides parallel ensembles over
// seeds and parameter sweeps over vehicle size.
package delivery

import (
	"math/rand"

	"github.com/kiran-v/nanosim/internal/analysis"
	"github.com/kiran-v/nanosim/internal/design"
	"github.com/kiran-v/nanosim/internal/sim"
)

// Result is the complete outcome of one delivery simulation. Field
// names are a stable contract with the presentation and report layers.
type Result struct {
	Path          []sim.Vec                   `json:"path"`
	Steps         int                         `json:"steps"`
	SuccessRate   float64                     `json:"success_rate"`
	Analysis      analysis.TrajectoryAnalysis `json:"trajectory_analysis"`
	Velocities    []float64                   `json:"velocities"`
	Effects       []sim.Effect                `json:"environmental_effects"`
	TargetReached bool                        `json:"target_reached"`
}

// Simulate runs one delivery of the designed nanobot from the origin
// to target, drawing all noise from rng. Steps counts path entries,
// start position included. Observers receive per-step callbacks.
func Simulate(bot *design.Nanobot, target sim.Vec, rng *rand.Rand, observers ...sim.Observer) (*Result, error) {
	it := sim.New(rng)
	for _, o := range observers {
		it.AddObserver(o)
	}
	traj, err := it.Run(sim.Vec{}, target, bot)
	if err != nil {
		return nil, err
	}
	return newResult(traj, target), nil
}

// SimulateSeed is Simulate with a freshly seeded random source.
func SimulateSeed(bot *design.Nanobot, target sim.Vec, seed int64, observers ...sim.Observer) (*Result, error) {
	return Simulate(bot, target, rand.New(rand.NewSource(seed)), observers...)
}

func newResult(traj *sim.Trajectory, target sim.Vec) *Result {
	velocities := make([]float64, len(traj.Records))
	effects := make([]sim.Effect, len(traj.Records))
	for i, rec := range traj.Records {
		velocities[i] = rec.Velocity
		effects[i] = rec.Effect
	}

	return &Result{
		Path:          traj.Path,
		Steps:         len(traj.Path),
		SuccessRate:   analysis.SuccessRate(traj.Path, target),
		Analysis:      analysis.Analyze(traj.Path, velocities, effects),
		Velocities:    velocities,
		Effects:       effects,
		TargetReached: traj.TargetReached(),
	}
}
