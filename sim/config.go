package sim

import "fmt"

// Config groups the simulation scenario parameters. Covariate generation has
// its own spec in sim/covariates; the panel is passed to NewSimulator
// separately so the engine stays independent of how trajectories are built.
type Config struct {
	Seed        int64        `yaml:"seed"`
	Borrowers   int          `yaml:"borrowers"`
	HorizonDays int          `yaml:"horizon_days"`
	StepDays    float64      `yaml:"step_days"`
	Transitions []Transition `yaml:"transitions"`
}

// Validate checks the scenario for internal consistency: positive sizes, one
// transition per forward step of the chain in order, strictly positive
// baselines.
func (c Config) Validate() error {
	if c.Borrowers <= 0 {
		return fmt.Errorf("borrowers must be > 0, got %d", c.Borrowers)
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("horizon_days must be > 0, got %d", c.HorizonDays)
	}
	if c.StepDays <= 0 {
		return fmt.Errorf("step_days must be > 0, got %g", c.StepDays)
	}
	if len(c.Transitions) != NumTransitions {
		return fmt.Errorf("expected %d transitions (one per forward step), got %d",
			NumTransitions, len(c.Transitions))
	}
	for i, tr := range c.Transitions {
		if tr.From != State(i) {
			return fmt.Errorf("transition %d: from=%s, want %s", i, tr.From, State(i))
		}
		if tr.Baseline <= 0 {
			return fmt.Errorf("transition %s→%s: baseline must be > 0, got %g",
				tr.From, tr.From.Next(), tr.Baseline)
		}
		for _, e := range tr.Effects {
			if e.Covariate == "" {
				return fmt.Errorf("transition %s→%s: effect with empty covariate name",
					tr.From, tr.From.Next())
			}
		}
	}
	return nil
}
