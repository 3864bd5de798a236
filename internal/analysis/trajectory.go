package analysis

import "github.com/kiran-v/nanosim/internal/sim"

// EnvironmentalImpact aggregates the per-step perturbation records.
type EnvironmentalImpact struct {
	BrownianIntensity           float64 `json:"brownian_intensity"`
	ResistanceImpact            float64 `json:"resistance_impact"`
	CellularInteractionStrength float64 `json:"cellular_interaction_strength"`
}

// TrajectoryAnalysis is the aggregate statistics record for one run.
type TrajectoryAnalysis struct {
	TotalDistance       float64             `json:"total_distance"`
	AverageVelocity     float64             `json:"average_velocity"`
	VelocityVariance    float64             `json:"velocity_variance"`
	PathLinearity       float64             `json:"path_linearity"`
	EnvironmentalImpact EnvironmentalImpact `json:"environmental_impact"`
}

// Analyze computes trajectory statistics from a path, its per-step
// velocities, and the recorded environmental effects. A path with
// fewer than two points yields the degenerate record (zero distance,
// linearity 1.0).
func Analyze(path []sim.Vec, velocities []float64, effects []sim.Effect) TrajectoryAnalysis {
	impact := analyzeImpact(effects)

	if len(path) < 2 {
		return TrajectoryAnalysis{
			PathLinearity:       1.0,
			EnvironmentalImpact: impact,
		}
	}

	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += path[i+1].Sub(path[i]).Norm()
	}

	linearity := 1.0
	if total > 0 {
		linearity = path[len(path)-1].Sub(path[0]).Norm() / total
	}

	return TrajectoryAnalysis{
		TotalDistance:       total,
		AverageVelocity:     mean(velocities),
		VelocityVariance:    variance(velocities),
		PathLinearity:       linearity,
		EnvironmentalImpact: impact,
	}
}

func analyzeImpact(effects []sim.Effect) EnvironmentalImpact {
	if len(effects) == 0 {
		return EnvironmentalImpact{}
	}

	var brownian, resistance, cellular float64
	for _, e := range effects {
		brownian += e.Brownian.Norm()
		resistance += e.FluidResistance
		cellular += e.CellularInteraction
	}

	n := float64(len(effects))
	return EnvironmentalImpact{
		BrownianIntensity:           brownian / n,
		ResistanceImpact:            resistance / n,
		CellularInteractionStrength: cellular / n,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance is the population variance, matching the convention used
// for the rest of the aggregate statistics.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}
