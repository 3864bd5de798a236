package analysis

import "github.com/kiran-v/nanosim/internal/sim"

// Success-rate weighting between closeness to target and path length.
const (
	distanceWeight   = 0.7
	efficiencyWeight = 0.3
)

// SuccessRate scores a delivery path against its target. Proximity of
// the final position dominates; shorter paths score higher. The
// expected travel scale is the distance from the origin start point to
// the target. A zero-distance target is special-cased: an exact hit
// counts as fully on-target, anything else as fully off-target.
func SuccessRate(path []sim.Vec, target sim.Vec) float64 {
	if len(path) == 0 {
		return 0
	}

	finalDistance := path[len(path)-1].Sub(target).Norm()
	pathEfficiency := 1 / float64(len(path))
	maxExpected := target.Norm()

	var normalized float64
	switch {
	case maxExpected > 0:
		normalized = finalDistance / maxExpected
		if normalized > 1 {
			normalized = 1
		}
	case finalDistance == 0:
		normalized = 0
	default:
		normalized = 1
	}

	return distanceWeight*(1-normalized) + efficiencyWeight*pathEfficiency
}
