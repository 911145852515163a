package sim

import "math"

// SeasonalPeriodDays is the period of the seasonal sinusoid used by the
// time-varying coefficient model: one year in days.
const SeasonalPeriodDays = 365.0

// Coeff is a time-varying regression coefficient defined by two endpoint
// values. Start is the value when the seasonal sinusoid is at its trough,
// Mid the value at its peak half a period later; days in between blend the
// two smoothly, so the induced hazards are differentiable in time.
type Coeff struct {
	Start float64 `yaml:"start"`
	Mid   float64 `yaml:"mid"`
}

// At returns the interpolated coefficient for the given day:
//
//	Start + (Mid-Start) * (1 + sin(2π·day/P)) / 2
//
// Periodic with period SeasonalPeriodDays.
func (c Coeff) At(day float64) float64 {
	blend := (1 + math.Sin(2*math.Pi*day/SeasonalPeriodDays)) / 2
	return c.Start + (c.Mid-c.Start)*blend
}
