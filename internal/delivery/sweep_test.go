package delivery

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kiran-v/nanosim/internal/design"
	"github.com/kiran-v/nanosim/internal/sim"
)

func TestSweepSizes(t *testing.T) {
	target := sim.Vec{1, 1, 1}
	points, err := SweepSizes(design.MRNA, []float64{5, 30, 80}, target, 1)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	wantMechanisms := []design.Mechanism{
		design.PassiveDiffusion,
		design.ActiveTransport,
		design.GuidedPropulsion,
	}
	for i, p := range points {
		if p.Mechanism != wantMechanisms[i] {
			t.Errorf("point %d: expected %s, got %s", i, wantMechanisms[i], p.Mechanism)
		}
	}

	// 30nm is the efficiency peak.
	if points[1].Efficiency <= points[0].Efficiency || points[1].Efficiency <= points[2].Efficiency {
		t.Errorf("expected peak efficiency at 30nm: %+v", points)
	}
}

func TestSweepInvalidSize(t *testing.T) {
	_, err := SweepSizes(design.MRNA, []float64{-1}, sim.Vec{1, 1, 1}, 1)
	if !errors.Is(err, design.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestSizeRange(t *testing.T) {
	got := SizeRange(5, 20, 5)
	if !reflect.DeepEqual(got, []float64{5, 10, 15, 20}) {
		t.Errorf("unexpected grid: %v", got)
	}

	if SizeRange(10, 5, 1) != nil {
		t.Error("expected nil for inverted range")
	}
	if SizeRange(5, 10, 0) != nil {
		t.Error("expected nil for zero step")
	}
}
