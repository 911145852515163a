// Package covariates generates the synthetic per-borrower, per-day covariate
// panel consumed by the simulation engine. Trajectories are generated
// independently of the borrowers' delinquency states; that simplification is
// intentional and keeps the panel a pure function of (spec, seed).
package covariates

import "fmt"

// Covariate column names, in panel order.
const (
	AmountOutstanding = "amount_outstanding"
	STRRatio          = "str_ratio"
	WeatherIndex      = "weather_index"
	Inflation         = "inflation"
)

// Names returns the fixed covariate column order of generated panels.
func Names() []string {
	return []string{AmountOutstanding, STRRatio, WeatherIndex, Inflation}
}

// Spec configures the synthetic covariate panel.
// Loaded from YAML as part of the scenario file.
type Spec struct {
	// amount_outstanding: one log-normal draw per borrower (log-space
	// parameters), then linear amortization down to AmountResidual of the
	// initial draw by the final day. No per-day noise.
	AmountMeanLog  float64 `yaml:"amount_mean_log"`
	AmountSigmaLog float64 `yaml:"amount_sigma_log"`
	AmountResidual float64 `yaml:"amount_residual"`

	// str_ratio: one uniform base draw per borrower, modulated by a yearly
	// sinusoid of relative amplitude STRSeasonAmp, plus iid Gaussian noise.
	STRMin       float64 `yaml:"str_min"`
	STRMax       float64 `yaml:"str_max"`
	STRSeasonAmp float64 `yaml:"str_season_amp"`
	STRNoiseSig  float64 `yaml:"str_noise_sigma"`

	// weather_index: a single phase-shifted yearly sinusoid shared by all
	// borrowers, plus small iid Gaussian noise.
	WeatherAmp      float64 `yaml:"weather_amp"`
	WeatherPhase    float64 `yaml:"weather_phase_days"`
	WeatherNoiseSig float64 `yaml:"weather_noise_sigma"`

	// inflation: a shared linear trend (base + daily drift), plus small iid
	// Gaussian noise.
	InflationBase     float64 `yaml:"inflation_base"`
	InflationDrift    float64 `yaml:"inflation_drift"`
	InflationNoiseSig float64 `yaml:"inflation_noise_sigma"`
}

// DefaultSpec returns the baseline covariate parameters.
func DefaultSpec() Spec {
	return Spec{
		AmountMeanLog:  10.0, // exp(10) ≈ 22k initial balance
		AmountSigmaLog: 0.5,
		AmountResidual: 0.2,

		STRMin:       0.2,
		STRMax:       0.6,
		STRSeasonAmp: 0.1,
		STRNoiseSig:  0.02,

		WeatherAmp:      1.0,
		WeatherPhase:    90,
		WeatherNoiseSig: 0.1,

		InflationBase:     0.02,
		InflationDrift:    1e-5,
		InflationNoiseSig: 0.001,
	}
}

// Validate checks the spec for parameter ranges that would make generation
// meaningless.
func (s Spec) Validate() error {
	if s.AmountSigmaLog < 0 {
		return fmt.Errorf("amount_sigma_log must be >= 0, got %g", s.AmountSigmaLog)
	}
	if s.AmountResidual < 0 || s.AmountResidual > 1 {
		return fmt.Errorf("amount_residual must be in [0,1], got %g", s.AmountResidual)
	}
	if s.STRMin > s.STRMax {
		return fmt.Errorf("str_min %g exceeds str_max %g", s.STRMin, s.STRMax)
	}
	if s.STRNoiseSig < 0 || s.WeatherNoiseSig < 0 || s.InflationNoiseSig < 0 {
		return fmt.Errorf("noise sigmas must be >= 0")
	}
	return nil
}
