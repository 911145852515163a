package risk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/portfolio-sim/portfolio-sim/sim"
)

// DefaultHorizonDays is the projection horizon used when none is given.
const DefaultHorizonDays = 90

// Projector propagates a state-occupancy vector through the delinquency
// chain one day at a time. The current→mild hazard may vary per day (fitted
// curve); the mild→severe and severe→default hazards are held constant over
// the horizon. Holding the deeper hazards constant is a deliberate
// approximation of the full non-homogeneous chain, not a bug.
type Projector struct {
	Hazard01 HazardCurve
	Hazard12 float64
	Hazard23 float64
}

// DefaultProbability starts from a one-hot occupancy at the current state and
// returns the probability mass absorbed in default after horizon days. Each
// day builds the generator matrix Q (off-diagonal hazards, diagonal negative
// row sums), exponentiates it into the one-day transition matrix and advances
// the occupancy vector.
func (p *Projector) DefaultProbability(horizon int) (float64, error) {
	if horizon <= 0 {
		return 0, fmt.Errorf("horizon must be > 0, got %d", horizon)
	}
	if p.Hazard01 == nil {
		return 0, fmt.Errorf("missing current→mild hazard curve")
	}
	if err := checkHazard("mild→severe", p.Hazard12); err != nil {
		return 0, err
	}
	if err := checkHazard("severe→default", p.Hazard23); err != nil {
		return 0, err
	}

	occ := mat.NewVecDense(sim.NumStates, nil)
	occ.SetVec(int(sim.StateCurrent), 1)

	var trans, next mat.Dense
	for day := 0; day < horizon; day++ {
		h01 := p.Hazard01.At(day)
		if err := checkHazard("current→mild", h01); err != nil {
			return 0, err
		}
		q := generator(h01, p.Hazard12, p.Hazard23)
		trans.Exp(q)

		// occupancy is a row vector: occ' = occ · P
		next.Mul(occ.T(), &trans)
		for s := 0; s < sim.NumStates; s++ {
			occ.SetVec(s, next.At(0, s))
		}
	}

	return occ.AtVec(int(sim.StateDefault)), nil
}

// generator builds the 4×4 rate matrix for one day of the chain. Rows sum to
// zero so total probability is conserved under exponentiation.
func generator(h01, h12, h23 float64) *mat.Dense {
	q := mat.NewDense(sim.NumStates, sim.NumStates, nil)
	q.Set(int(sim.StateCurrent), int(sim.StateMild), h01)
	q.Set(int(sim.StateCurrent), int(sim.StateCurrent), -h01)
	q.Set(int(sim.StateMild), int(sim.StateSevere), h12)
	q.Set(int(sim.StateMild), int(sim.StateMild), -h12)
	q.Set(int(sim.StateSevere), int(sim.StateDefault), h23)
	q.Set(int(sim.StateSevere), int(sim.StateSevere), -h23)
	// absorbing row stays zero
	return q
}

func checkHazard(name string, h float64) error {
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("%s hazard must be finite and >= 0, got %g", name, h)
	}
	return nil
}
