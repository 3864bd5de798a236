package sim

// Status is the terminal state of an integration run.
type Status int

const (
	// Traveling is the initial, non-terminal state.
	Traveling Status = iota
	// Reached means the vehicle converged within the target threshold.
	Reached
	// Exhausted means the step cap was hit before convergence. This is
	// a normal, reportable outcome, not an error.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Traveling:
		return "traveling"
	case Reached:
		return "reached"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Effect records the environmental perturbations applied on one step.
type Effect struct {
	Brownian            Vec     `json:"brownian_motion"`
	FluidResistance     float64 `json:"fluid_resistance"`
	CellularInteraction float64 `json:"cellular_interaction"`
}

// Step is the per-iteration record produced by the integrator. Steps
// are owned exclusively by the trajectory that created them.
type Step struct {
	Position Vec     `json:"position"`
	Velocity float64 `json:"velocity"`
	Effect   Effect  `json:"effect"`
}

// Trajectory is the raw output of an integration run. Path always
// contains at least the start position.
type Trajectory struct {
	Path    []Vec
	Records []Step
	Status  Status
}

// TargetReached reports whether the run terminated by convergence.
func (t *Trajectory) TargetReached() bool {
	return t.Status == Reached
}

// Observer receives a callback after every integration step.
type Observer interface {
	OnStep(step int, pos Vec, velocity float64)
}
