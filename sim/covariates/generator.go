package covariates

import (
	"fmt"
	"math"
	randv2 "math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/portfolio-sim/portfolio-sim/sim"
)

// yearDays matches the seasonal period of the coefficient model so covariate
// seasonality and coefficient seasonality share a calendar.
const yearDays = sim.SeasonalPeriodDays

// Generate builds the covariate panel for the scenario: borrowers×days
// trajectories for every covariate in Names order. Deterministic given the
// same spec and PartitionedRNG key.
//
// Base draws (initial balances, base spend ratios) come from gonum
// distributions seeded from the covariates subsystem; per-day Gaussian noise
// comes from the subsystem's own stream. Trajectories do not depend on the
// borrower's delinquency state.
func Generate(spec Spec, borrowers, days int, prng *sim.PartitionedRNG) (*Panel, error) {
	if borrowers <= 0 || days <= 0 {
		return nil, fmt.Errorf("panel dimensions must be positive, got %d×%d", borrowers, days)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid covariate spec: %w", err)
	}

	seed := uint64(prng.SeedFor(sim.SubsystemCovariates))
	amountDist := distuv.LogNormal{
		Mu:    spec.AmountMeanLog,
		Sigma: spec.AmountSigmaLog,
		Src:   randv2.NewPCG(seed, 1),
	}
	strDist := distuv.Uniform{
		Min: spec.STRMin,
		Max: spec.STRMax,
		Src: randv2.NewPCG(seed, 2),
	}
	noise := prng.ForSubsystem(sim.SubsystemCovariates)

	p := NewPanel(borrowers, days)

	// Deterministic decay from the initial draw to AmountResidual of it by
	// the final day; no per-day noise on balances.
	decaySpan := float64(days - 1)
	for b := 0; b < borrowers; b++ {
		initial := amountDist.Rand()
		for d := 0; d < days; d++ {
			frac := 0.0
			if decaySpan > 0 {
				frac = float64(d) / decaySpan
			}
			p.set(AmountOutstanding, b, d, initial*(1-(1-spec.AmountResidual)*frac))
		}
	}

	for b := 0; b < borrowers; b++ {
		base := strDist.Rand()
		for d := 0; d < days; d++ {
			season := 1 + spec.STRSeasonAmp*math.Sin(2*math.Pi*float64(d)/yearDays)
			p.set(STRRatio, b, d, base*season+spec.STRNoiseSig*noise.NormFloat64())
		}
	}

	// One shared seasonal signal per day, broadcast across borrowers.
	weather := make([]float64, days)
	for d := 0; d < days; d++ {
		weather[d] = spec.WeatherAmp * math.Sin(2*math.Pi*(float64(d)+spec.WeatherPhase)/yearDays)
	}
	for b := 0; b < borrowers; b++ {
		for d := 0; d < days; d++ {
			p.set(WeatherIndex, b, d, weather[d]+spec.WeatherNoiseSig*noise.NormFloat64())
		}
	}

	for b := 0; b < borrowers; b++ {
		for d := 0; d < days; d++ {
			trend := spec.InflationBase + spec.InflationDrift*float64(d)
			p.set(Inflation, b, d, trend+spec.InflationNoiseSig*noise.NormFloat64())
		}
	}

	return p, nil
}
