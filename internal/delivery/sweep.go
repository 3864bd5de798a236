package delivery

import (
	"sync"

	"github.com/kiran-v/nanosim/internal/design"
	"github.com/kiran-v/nanosim/internal/sim"
)

// SweepPoint is the outcome of one size evaluated in a sweep.
type SweepPoint struct {
	Size          float64          `json:"size"`
	Mechanism     design.Mechanism `json:"delivery_mechanism"`
	Efficiency    float64          `json:"efficiency"`
	SuccessRate   float64          `json:"success_rate"`
	Steps         int              `json:"steps"`
	TargetReached bool             `json:"target_reached"`
}

// SweepSizes evaluates a fixed payload across vehicle sizes against
// one target. Every point uses the same seed so configurations are
// compared under identical noise. Points come back in input order.
func SweepSizes(payload design.PayloadType, sizes []float64, target sim.Vec, seed int64) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(sizes))
	errs := make([]error, len(sizes))

	var wg sync.WaitGroup
	for i, size := range sizes {
		wg.Add(1)
		go func(idx int, size float64) {
			defer wg.Done()

			bot, err := design.Design(size, payload)
			if err != nil {
				errs[idx] = err
				return
			}

			res, err := SimulateSeed(bot, target, seed)
			if err != nil {
				errs[idx] = err
				return
			}

			points[idx] = SweepPoint{
				Size:          size,
				Mechanism:     bot.Mechanism,
				Efficiency:    bot.Efficiency,
				SuccessRate:   res.SuccessRate,
				Steps:         res.Steps,
				TargetReached: res.TargetReached,
			}
		}(i, size)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

// SizeRange builds the size grid [min, max] with the given step.
func SizeRange(min, max, step float64) []float64 {
	if step <= 0 || max < min {
		return nil
	}
	sizes := make([]float64, 0, int((max-min)/step)+1)
	for s := min; s <= max; s += step {
		sizes = append(sizes, s)
	}
	return sizes
}
