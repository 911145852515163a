package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoeff_Periodicity(t *testing.T) {
	c := Coeff{Start: -0.5, Mid: 2.0}
	for _, day := range []float64{0, 17, 91.25, 180, 273.75, 364} {
		assert.InDelta(t, c.At(day), c.At(day+SeasonalPeriodDays), 1e-12,
			"coefficient must repeat after one period (day %g)", day)
	}
}

func TestCoeff_Endpoints(t *testing.T) {
	c := Coeff{Start: 1.0, Mid: 3.0}

	// sin is -1 at 3/4 of the period: blend hits Start exactly.
	trough := 0.75 * SeasonalPeriodDays
	assert.InDelta(t, 1.0, c.At(trough), 1e-9)

	// sin is +1 at 1/4 of the period: blend hits Mid exactly.
	peak := 0.25 * SeasonalPeriodDays
	assert.InDelta(t, 3.0, c.At(peak), 1e-9)

	// Day zero sits exactly between the endpoints.
	assert.InDelta(t, 2.0, c.At(0), 1e-12)
}

func TestCoeff_Bounded(t *testing.T) {
	c := Coeff{Start: -1.0, Mid: 4.0}
	lo, hi := math.Min(c.Start, c.Mid), math.Max(c.Start, c.Mid)
	for day := 0.0; day < 2*SeasonalPeriodDays; day += 3.7 {
		v := c.At(day)
		if v < lo-1e-12 || v > hi+1e-12 {
			t.Fatalf("At(%g) = %g outside [%g, %g]", day, v, lo, hi)
		}
	}
}
