package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/portfolio-sim/portfolio-sim/sim"
	"github.com/portfolio-sim/portfolio-sim/sim/covariates"
)

// Scenario is the full YAML scenario file: engine configuration plus the
// covariate generation spec.
type Scenario struct {
	sim.Config `yaml:",inline"`
	Covariates covariates.Spec `yaml:"covariates"`
}

// DefaultScenario is the built-in scenario used when no file is given: a
// one-year portfolio of 1000 borrowers with mildly seasonal covariate
// effects on every transition.
func DefaultScenario() Scenario {
	return Scenario{
		Config: sim.Config{
			Seed:        42,
			Borrowers:   1000,
			HorizonDays: 365,
			StepDays:    1,
			Transitions: []sim.Transition{
				{
					From:     sim.StateCurrent,
					Baseline: 0.002,
					Effects: []sim.Effect{
						{Covariate: covariates.AmountOutstanding, Coeff: sim.Coeff{Start: 1e-5, Mid: 2e-5}},
						{Covariate: covariates.STRRatio, Coeff: sim.Coeff{Start: 0.5, Mid: 1.0}},
						{Covariate: covariates.WeatherIndex, Coeff: sim.Coeff{Start: 0.1, Mid: 0.3}},
						{Covariate: covariates.Inflation, Coeff: sim.Coeff{Start: 2.0, Mid: 4.0}},
					},
				},
				{
					From:     sim.StateMild,
					Baseline: 0.01,
					Effects: []sim.Effect{
						{Covariate: covariates.STRRatio, Coeff: sim.Coeff{Start: 0.8, Mid: 1.2}},
						{Covariate: covariates.Inflation, Coeff: sim.Coeff{Start: 3.0, Mid: 6.0}},
					},
				},
				{
					From:     sim.StateSevere,
					Baseline: 0.02,
					Effects: []sim.Effect{
						{Covariate: covariates.STRRatio, Coeff: sim.Coeff{Start: 1.0, Mid: 1.5}},
					},
				},
			},
		},
		Covariates: covariates.DefaultSpec(),
	}
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	scn := DefaultScenario()
	if err := yaml.Unmarshal(data, &scn); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if err := scn.Config.Validate(); err != nil {
		return Scenario{}, err
	}
	if err := scn.Covariates.Validate(); err != nil {
		return Scenario{}, err
	}
	return scn, nil
}
