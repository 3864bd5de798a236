// Package sim provides the stochastic trajectory integrator for
// nanobot delivery runs.
//
// The package defines the primitives for step-wise simulation in 3-D:
//
//   - [Vec]: fixed 3-vector with the usual norm/scale operations
//   - [Step]: per-iteration record (position, velocity, effects)
//   - [Integrator]: the Traveling/Reached/Exhausted stepper
//
// # Reproducibility
//
// The integrator draws all noise from an injected *rand.Rand, so two
// runs with the same seed produce bit-identical trajectories:
//
//	it := sim.New(rand.New(rand.NewSource(seed)))
//	traj, err := it.Run(sim.Vec{}, target, bot)
//
// Integrator instances are NOT thread-safe; give each concurrent run
// its own integrator and random source.
package sim
