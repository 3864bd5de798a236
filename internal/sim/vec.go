package sim

import "math"

// Vec is a position or displacement in 3-D space.
type Vec [3]float64

func (v Vec) Add(other Vec) Vec {
	return Vec{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

func (v Vec) Sub(other Vec) Vec {
	return Vec{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

func (v Vec) Scale(factor float64) Vec {
	return Vec{v[0] * factor, v[1] * factor, v[2] * factor}
}

func (v Vec) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Sum is the sum of the components.
func (v Vec) Sum() float64 {
	return v[0] + v[1] + v[2]
}

// Normalize returns the unit vector in the direction of v. The zero
// vector normalizes to itself, guarding the divide-by-zero when a run
// starts exactly on its target.
func (v Vec) Normalize() Vec {
	n := v.Norm()
	if n == 0 {
		return Vec{}
	}
	return v.Scale(1 / n)
}

func (v Vec) IsValid() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
