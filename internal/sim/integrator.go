package sim

import (
	"errors"
	"math"
	"math/rand"

	"github.com/kiran-v/nanosim/internal/design"
)

// ErrNilConfig indicates a missing nanobot configuration.
var ErrNilConfig = errors.New("sim: nil nanobot configuration")

const (
	// MaxSteps is the hard cap on integration steps. The brownian term
	// makes convergence not guaranteed, so the cap is a required
	// termination bound, not an optimization.
	MaxSteps = 1000

	// ReachThreshold is the convergence distance to the target.
	ReachThreshold = 1e-3

	brownianSigma   = 0.01
	resistanceCoeff = 0.05
	cellularCoeff   = 0.02
)

// Base velocity per delivery mechanism, scaled by design efficiency.
var mechanismVelocity = map[design.Mechanism]float64{
	design.PassiveDiffusion: 0.05,
	design.ActiveTransport:  0.1,
	design.GuidedPropulsion: 0.15,
}

// Integrator steps a nanobot through 3-D space toward a target under
// design-dependent drift and stochastic environmental perturbation.
type Integrator struct {
	rng       *rand.Rand
	observers []Observer
}

// New returns an integrator drawing noise from rng. A nil rng gets a
// fixed default seed so the zero value still behaves deterministically.
func New(rng *rand.Rand) *Integrator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Integrator{rng: rng}
}

func (it *Integrator) AddObserver(o Observer) {
	it.observers = append(it.observers, o)
}

// Run integrates from start toward target under the given design.
// It terminates with Reached when the position comes within
// ReachThreshold of the target, or Exhausted after MaxSteps.
func (it *Integrator) Run(start, target Vec, bot *design.Nanobot) (*Trajectory, error) {
	if bot == nil {
		return nil, ErrNilConfig
	}

	base := mechanismVelocity[bot.Mechanism] * bot.Efficiency

	current := start
	path := make([]Vec, 0, 64)
	path = append(path, start)
	records := make([]Step, 0, 64)

	for len(records) < MaxSteps && target.Sub(current).Norm() >= ReachThreshold {
		direction := target.Sub(current).Normalize()

		resistance := -resistanceCoeff * base
		velocity := base + resistance

		brownian := Vec{
			it.rng.NormFloat64() * brownianSigma,
			it.rng.NormFloat64() * brownianSigma,
			it.rng.NormFloat64() * brownianSigma,
		}
		cellular := cellularCoeff * math.Sin(current.Sum())

		movement := direction.Scale(velocity).Add(brownian).Add(direction.Scale(cellular))
		current = current.Add(movement)

		path = append(path, current)
		records = append(records, Step{
			Position: current,
			Velocity: velocity,
			Effect: Effect{
				Brownian:            brownian,
				FluidResistance:     resistance,
				CellularInteraction: cellular,
			},
		})

		for _, o := range it.observers {
			o.OnStep(len(records), current, velocity)
		}
	}

	status := Exhausted
	if target.Sub(current).Norm() < ReachThreshold {
		status = Reached
	}

	return &Trajectory{Path: path, Records: records, Status: status}, nil
}
