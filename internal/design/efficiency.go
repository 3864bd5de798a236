package design

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize indicates a non-positive vehicle size.
var ErrInvalidSize = errors.New("design: nanobot size must be positive")

const baseEfficiency = 0.9

// optimalSize is the size (nm) at which the Gaussian size factor peaks.
// Mid-sized vehicles balance diffusion speed against payload capacity.
const (
	optimalSize = 30.0
	sizeSpread  = 800.0
)

// PayloadFactors describes how a payload class affects delivery.
type PayloadFactors struct {
	Weight    float64 `json:"weight"`
	Stability float64 `json:"stability"`
	Diffusion float64 `json:"diffusion"`
}

// EnvironmentalFactors are fixed attenuation constants for the
// delivery environment.
type EnvironmentalFactors struct {
	PHSensitivity         float64 `json:"ph_sensitivity"`
	TemperatureStability  float64 `json:"temperature_stability"`
	CellularBarriers      float64 `json:"cellular_barriers"`
	DegradationResistance float64 `json:"degradation_resistance"`
}

func (e EnvironmentalFactors) mean() float64 {
	return (e.PHSensitivity + e.TemperatureStability + e.CellularBarriers + e.DegradationResistance) / 4
}

// Factors is the full efficiency breakdown. Every sub-factor is kept
// individually addressable for downstream protocol and chart rendering.
type Factors struct {
	BaseEfficiency       float64              `json:"base_efficiency"`
	SizeFactor           float64              `json:"size_factor"`
	PayloadFactors       PayloadFactors       `json:"payload_factors"`
	EnvironmentalFactors EnvironmentalFactors `json:"environmental_factors"`
}

// Efficiency is the scored delivery efficiency of a design.
type Efficiency struct {
	Overall float64 `json:"overall_efficiency"`
	Factors Factors `json:"factors"`
}

var payloadTable = map[PayloadType]PayloadFactors{
	SmallMolecules: {Weight: 0.1, Stability: 0.95, Diffusion: 0.9},
	MRNA:           {Weight: 0.3, Stability: 0.7, Diffusion: 0.8},
	Proteins:       {Weight: 0.5, Stability: 0.8, Diffusion: 0.7},
	Plasmids:       {Weight: 0.7, Stability: 0.6, Diffusion: 0.5},
}

var defaultEnvironment = EnvironmentalFactors{
	PHSensitivity:         0.95,
	TemperatureStability:  0.9,
	CellularBarriers:      0.85,
	DegradationResistance: 0.88,
}

// ComputeEfficiency scores the expected delivery efficiency of a
// vehicle of the given size (nm) carrying the given payload. The size
// factor is a Gaussian centered at 30 nm, so efficiency is not
// monotonic in size. Pure and deterministic.
func ComputeEfficiency(size float64, payload PayloadType) (Efficiency, error) {
	if size <= 0 {
		return Efficiency{}, fmt.Errorf("%w: got %g", ErrInvalidSize, size)
	}

	sizeFactor := math.Exp(-(size - optimalSize) * (size - optimalSize) / sizeSpread)

	pf, ok := payloadTable[payload]
	if !ok {
		pf = payloadTable[MRNA]
	}
	payloadEfficiency := (1 - pf.Weight) * pf.Stability * pf.Diffusion

	env := defaultEnvironment
	overall := baseEfficiency * sizeFactor * payloadEfficiency * env.mean()

	return Efficiency{
		Overall: overall,
		Factors: Factors{
			BaseEfficiency:       baseEfficiency,
			SizeFactor:           sizeFactor,
			PayloadFactors:       pf,
			EnvironmentalFactors: env,
		},
	}, nil
}
