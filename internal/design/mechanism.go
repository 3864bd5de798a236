package design

// Mechanism is the transport strategy assigned to a vehicle.
type Mechanism string

const (
	PassiveDiffusion Mechanism = "passive_diffusion"
	ActiveTransport  Mechanism = "active_transport"
	GuidedPropulsion Mechanism = "guided_propulsion"
)

// Size thresholds (nm) separating the mechanism regimes.
const (
	passiveLimit = 10.0
	activeLimit  = 50.0
)

// SelectMechanism picks the delivery mechanism for a vehicle size.
// Total over all sizes; the regimes do not overlap.
func SelectMechanism(size float64) Mechanism {
	switch {
	case size < passiveLimit:
		return PassiveDiffusion
	case size < activeLimit:
		return ActiveTransport
	default:
		return GuidedPropulsion
	}
}
