package design

import (
	"errors"
	"math"
	"testing"
)

func TestEfficiencyBounds(t *testing.T) {
	sizes := []float64{0.5, 5, 10, 20, 30, 45, 50, 75, 100, 500}
	payloads := []PayloadType{SmallMolecules, MRNA, Proteins, Plasmids}

	for _, size := range sizes {
		for _, payload := range payloads {
			eff, err := ComputeEfficiency(size, payload)
			if err != nil {
				t.Fatalf("size %g payload %s: %v", size, payload, err)
			}
			if eff.Overall < 0 || eff.Overall > 0.9 {
				t.Errorf("size %g payload %s: efficiency %f outside [0, 0.9]", size, payload, eff.Overall)
			}
		}
	}
}

func TestEfficiencyPeaksAtOptimalSize(t *testing.T) {
	sizes := []float64{5, 10, 20, 25, 30, 35, 40, 60, 90}

	prev := -1.0
	for _, size := range sizes {
		eff, err := ComputeEfficiency(size, MRNA)
		if err != nil {
			t.Fatal(err)
		}
		if size <= optimalSize {
			if eff.Overall <= prev {
				t.Errorf("size %g: expected increase below the 30nm peak, got %f <= %f", size, eff.Overall, prev)
			}
		} else if eff.Overall >= prev {
			t.Errorf("size %g: expected decrease above the 30nm peak, got %f >= %f", size, eff.Overall, prev)
		}
		prev = eff.Overall
	}
}

func TestEfficiencyKnownValue(t *testing.T) {
	eff, err := ComputeEfficiency(20, MRNA)
	if err != nil {
		t.Fatal(err)
	}

	// size factor exp(-100/800), payload (1-0.3)*0.7*0.8, env mean 0.895
	wantSizeFactor := math.Exp(-0.125)
	want := 0.9 * wantSizeFactor * 0.392 * 0.895

	if math.Abs(eff.Factors.SizeFactor-wantSizeFactor) > 1e-12 {
		t.Errorf("size factor: expected %f, got %f", wantSizeFactor, eff.Factors.SizeFactor)
	}
	if math.Abs(eff.Overall-want) > 1e-12 {
		t.Errorf("overall: expected %f, got %f", want, eff.Overall)
	}
}

func TestEfficiencyFactorBreakdown(t *testing.T) {
	eff, err := ComputeEfficiency(30, Proteins)
	if err != nil {
		t.Fatal(err)
	}

	f := eff.Factors
	if f.BaseEfficiency != 0.9 {
		t.Errorf("expected base efficiency 0.9, got %f", f.BaseEfficiency)
	}
	if f.PayloadFactors != (PayloadFactors{Weight: 0.5, Stability: 0.8, Diffusion: 0.7}) {
		t.Errorf("unexpected payload factors: %+v", f.PayloadFactors)
	}
	env := EnvironmentalFactors{
		PHSensitivity:         0.95,
		TemperatureStability:  0.9,
		CellularBarriers:      0.85,
		DegradationResistance: 0.88,
	}
	if f.EnvironmentalFactors != env {
		t.Errorf("unexpected environmental factors: %+v", f.EnvironmentalFactors)
	}
}

func TestEfficiencyPayloadOrdering(t *testing.T) {
	order := []PayloadType{SmallMolecules, MRNA, Proteins, Plasmids}

	prev := math.Inf(1)
	for _, payload := range order {
		eff, err := ComputeEfficiency(20, payload)
		if err != nil {
			t.Fatal(err)
		}
		if eff.Overall >= prev {
			t.Errorf("payload %s: expected lower efficiency than previous, got %f >= %f", payload, eff.Overall, prev)
		}
		prev = eff.Overall
	}
}

func TestEfficiencyUnknownPayloadDefaultsToMRNA(t *testing.T) {
	unknown, err := ComputeEfficiency(20, PayloadType("dna_origami"))
	if err != nil {
		t.Fatal(err)
	}
	mrna, err := ComputeEfficiency(20, MRNA)
	if err != nil {
		t.Fatal(err)
	}
	if unknown.Overall != mrna.Overall {
		t.Errorf("unknown payload should score as mRNA: %f != %f", unknown.Overall, mrna.Overall)
	}
}

func TestEfficiencyInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -10} {
		_, err := ComputeEfficiency(size, MRNA)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %g: expected ErrInvalidSize, got %v", size, err)
		}
	}
}
