package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Effect attaches a time-varying coefficient to a named covariate for one
// transition.
type Effect struct {
	Covariate string `yaml:"covariate"`
	Coeff     Coeff  `yaml:",inline"`
}

// Transition defines the hazard for one forward step of the delinquency
// chain (From → From+1): a strictly positive per-day baseline rate plus
// time-varying covariate effects acting multiplicatively through the
// exponentiated linear predictor.
type Transition struct {
	From     State    `yaml:"from"`
	Baseline float64  `yaml:"baseline"`
	Effects  []Effect `yaml:"effects"`
}

// maxLinearPredictor bounds the magnitude of the hazard exponent so extreme
// covariate values can neither overflow the hazard to +Inf nor underflow it
// to zero.
const maxLinearPredictor = 50.0

// Intensity returns the instantaneous transition hazard at the given day:
//
//	λ(t) = baseline · exp(Σ βc(t) · xc)
//
// Effects are evaluated in slice order so the floating-point sum is
// deterministic. Covariates missing from values contribute zero. The result
// is always finite, and strictly positive for a positive baseline.
func (tr Transition) Intensity(day float64, values map[string]float64) float64 {
	lp := 0.0
	for _, e := range tr.Effects {
		lp += e.Coeff.At(day) * values[e.Covariate]
	}
	return tr.Baseline * math.Exp(clampPredictor(lp, tr.From, day))
}

// clampPredictor keeps the hazard exponent finite and the hazard itself
// strictly positive. NaN collapses to zero (baseline hazard) with a warning;
// predictors saturate symmetrically at ±maxLinearPredictor, so exp can
// neither overflow nor underflow to exactly zero.
func clampPredictor(lp float64, from State, day float64) float64 {
	if math.IsNaN(lp) {
		logrus.Warnf("non-finite linear predictor for transition %s→%s at day %.0f; using baseline hazard",
			from, from.Next(), day)
		return 0
	}
	if lp > maxLinearPredictor || lp < -maxLinearPredictor {
		logrus.Debugf("linear predictor %.2f clamped for transition %s→%s at day %.0f",
			lp, from, from.Next(), day)
		return math.Copysign(maxLinearPredictor, lp)
	}
	return lp
}

// JumpProbability converts an intensity into the probability that the
// transition fires within one step of length dt, under a constant-hazard-
// within-interval assumption:
//
//	p = 1 − exp(−λ·dt)
//
// Lies in [0, 1) for λ ≥ 0 and approaches λ·dt as λ·dt → 0. Once λ·dt is
// large enough that exp underflows to zero, the result is capped just below
// 1 to keep the range half-open.
func JumpProbability(lambda, dt float64) float64 {
	p := 1 - math.Exp(-lambda*dt)
	if p >= 1 {
		return math.Nextafter(1, 0)
	}
	return p
}
