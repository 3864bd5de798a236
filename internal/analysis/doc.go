// Package analysis derives aggregate statistics from delivery
// trajectories: total distance, velocity moments, path linearity,
// environmental impact, and the scalar delivery success rate.
//
// All functions are pure and guard their degenerate inputs (single
// point paths, empty effect slices, zero-distance targets) with
// explicit fallback values instead of propagating NaN or Inf.
package analysis
