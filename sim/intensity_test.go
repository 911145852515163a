package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition_Intensity_BaselineOnly(t *testing.T) {
	tr := Transition{From: StateCurrent, Baseline: 0.05}
	got := tr.Intensity(10, nil)
	assert.InDelta(t, 0.05, got, 1e-12, "no effects means baseline hazard")
}

func TestTransition_Intensity_Positive(t *testing.T) {
	tr := Transition{
		From:     StateCurrent,
		Baseline: 0.01,
		Effects: []Effect{
			{Covariate: "x", Coeff: Coeff{Start: -2, Mid: 3}},
		},
	}
	for _, x := range []float64{-1e6, -1, 0, 1, 1e6} {
		for _, day := range []float64{0, 100, 300} {
			got := tr.Intensity(day, map[string]float64{"x": x})
			if got <= 0 || math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Intensity(day=%g, x=%g) = %g, want finite positive", day, x, got)
			}
		}
	}
}

func TestTransition_Intensity_MonotoneInBaseline(t *testing.T) {
	values := map[string]float64{"x": 1.5}
	effects := []Effect{{Covariate: "x", Coeff: Coeff{Start: 0.2, Mid: 0.4}}}

	prev := 0.0
	for _, baseline := range []float64{0.001, 0.01, 0.1, 1.0} {
		tr := Transition{From: StateMild, Baseline: baseline, Effects: effects}
		got := tr.Intensity(42, values)
		if got <= prev {
			t.Fatalf("intensity %g at baseline %g not greater than %g", got, baseline, prev)
		}
		prev = got
	}
}

func TestTransition_Intensity_ClampsOverflow(t *testing.T) {
	tr := Transition{
		From:     StateSevere,
		Baseline: 0.01,
		Effects:  []Effect{{Covariate: "x", Coeff: Coeff{Start: 1000, Mid: 1000}}},
	}
	got := tr.Intensity(0, map[string]float64{"x": 1e9})
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("overflowing predictor must be clamped, got %g", got)
	}
}

func TestTransition_Intensity_ClampsUnderflow(t *testing.T) {
	// A hugely negative predictor must saturate at the clamp floor, not
	// drive exp to exactly zero: the hazard stays strictly positive.
	tr := Transition{
		From:     StateCurrent,
		Baseline: 0.05,
		Effects:  []Effect{{Covariate: "x", Coeff: Coeff{Start: -2, Mid: 3}}},
	}
	got := tr.Intensity(0, map[string]float64{"x": -1e6})
	if got <= 0 {
		t.Fatalf("underflowing predictor must keep the hazard positive, got %g", got)
	}
	assert.InDelta(t, 0.05*math.Exp(-maxLinearPredictor), got, 1e-30,
		"hazard should saturate at the clamp floor")
}

func TestJumpProbability(t *testing.T) {
	tests := []struct {
		name   string
		lambda float64
		dt     float64
	}{
		{"zero hazard", 0, 1},
		{"small hazard", 0.001, 1},
		{"moderate hazard", 0.05, 1},
		{"large hazard", 100, 1},
		{"saturating hazard", 1e6, 1},
		{"fractional step", 0.3, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := JumpProbability(tt.lambda, tt.dt)
			if p < 0 || p >= 1 {
				t.Fatalf("p = %g outside [0, 1)", p)
			}
		})
	}
}

func TestJumpProbability_FirstOrderConsistency(t *testing.T) {
	// For small λ·dt, p ≈ λ·dt.
	for _, lambda := range []float64{1e-6, 1e-4, 1e-3} {
		p := JumpProbability(lambda, 1)
		assert.InDelta(t, lambda, p, lambda*lambda,
			"p should approach λ·dt for small hazards")
	}
}

func TestJumpProbability_ZeroHazard(t *testing.T) {
	if p := JumpProbability(0, 1); p != 0 {
		t.Fatalf("zero hazard must give zero jump probability, got %g", p)
	}
}

func TestJumpProbability_CappedBelowOne(t *testing.T) {
	// exp(−λ·dt) underflows to zero here; the probability must still sit
	// strictly below 1.
	p := JumpProbability(1e6, 1)
	if p >= 1 {
		t.Fatalf("p = %g, want strictly below 1", p)
	}
	assert.Equal(t, math.Nextafter(1, 0), p)
}
