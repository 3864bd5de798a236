package delivery

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/kiran-v/nanosim/internal/design"
	"github.com/kiran-v/nanosim/internal/sim"
)

func TestSimulateMRNAScenario(t *testing.T) {
	bot, err := design.Design(20, design.MRNA)
	if err != nil {
		t.Fatalf("design failed: %v", err)
	}

	if bot.Mechanism != design.ActiveTransport {
		t.Fatalf("expected active_transport, got %s", bot.Mechanism)
	}
	if math.Abs(bot.Factors.SizeFactor-0.8825) > 1e-4 {
		t.Errorf("expected size factor ~0.8825, got %f", bot.Factors.SizeFactor)
	}

	result, err := SimulateSeed(bot, sim.Vec{1, 1, 1}, 0)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if result.Steps != len(result.Path) {
		t.Errorf("steps %d should count path entries %d", result.Steps, len(result.Path))
	}
	if result.Steps < 1 || result.Steps > sim.MaxSteps+1 {
		t.Errorf("steps %d outside [1, %d]", result.Steps, sim.MaxSteps+1)
	}
	if result.SuccessRate < 0 || result.SuccessRate > 1 {
		t.Errorf("success rate %f outside [0, 1]", result.SuccessRate)
	}
	if len(result.Velocities) != len(result.Path)-1 {
		t.Errorf("expected %d velocities, got %d", len(result.Path)-1, len(result.Velocities))
	}
	if len(result.Effects) != len(result.Velocities) {
		t.Errorf("effects/velocities length mismatch: %d vs %d", len(result.Effects), len(result.Velocities))
	}
	if result.Analysis.TotalDistance <= 0 {
		t.Errorf("expected positive travel distance, got %f", result.Analysis.TotalDistance)
	}
}

func TestSimulateDeterminism(t *testing.T) {
	bot, err := design.Design(20, design.MRNA)
	if err != nil {
		t.Fatal(err)
	}
	target := sim.Vec{1, 1, 1}

	first, err := SimulateSeed(bot, target, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := SimulateSeed(bot, target, 0)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first.Path, second.Path) {
		t.Error("identical seeds must produce identical paths")
	}
	if first.SuccessRate != second.SuccessRate {
		t.Errorf("success rate drifted: %f vs %f", first.SuccessRate, second.SuccessRate)
	}
	if first.TargetReached != second.TargetReached {
		t.Error("target_reached drifted between identical runs")
	}
}

func TestSimulateNilConfig(t *testing.T) {
	_, err := Simulate(nil, sim.Vec{1, 1, 1}, rand.New(rand.NewSource(0)))
	if !errors.Is(err, sim.ErrNilConfig) {
		t.Errorf("expected ErrNilConfig, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []*Result{
		{Steps: 10, SuccessRate: 0.4, TargetReached: true},
		{Steps: 20, SuccessRate: 0.8, TargetReached: false},
	}
	s := Summarize(results)

	if s.Runs != 2 {
		t.Errorf("expected 2 runs, got %d", s.Runs)
	}
	if math.Abs(s.MeanSuccessRate-0.6) > 1e-12 {
		t.Errorf("expected mean success 0.6, got %f", s.MeanSuccessRate)
	}
	if s.ReachedFraction != 0.5 {
		t.Errorf("expected reached fraction 0.5, got %f", s.ReachedFraction)
	}
	if s.MeanSteps != 15 {
		t.Errorf("expected mean steps 15, got %f", s.MeanSteps)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}
