package design

import "testing"

func TestSelectMechanismBoundaries(t *testing.T) {
	tests := []struct {
		size     float64
		expected Mechanism
	}{
		{5, PassiveDiffusion},
		{9.999, PassiveDiffusion},
		{10, ActiveTransport},
		{30, ActiveTransport},
		{49.999, ActiveTransport},
		{50, GuidedPropulsion},
		{80, GuidedPropulsion},
	}

	for _, tt := range tests {
		if got := SelectMechanism(tt.size); got != tt.expected {
			t.Errorf("size %g: expected %s, got %s", tt.size, tt.expected, got)
		}
	}
}
