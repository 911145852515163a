// Package risk projects fitted hazards forward through the delinquency chain
// and provides the scoring glue (concordance, Brier) over the simulator's
// output table.
package risk

// HazardCurve supplies a per-day transition hazard, typically the fitted
// values of an external time-varying survival regression.
type HazardCurve interface {
	At(day int) float64
}

// ConstantHazard is a flat hazard curve.
type ConstantHazard float64

func (h ConstantHazard) At(int) float64 { return float64(h) }

// FittedHazard wraps per-day fitted hazard values. Days beyond the fitted
// range reuse the last value; an empty curve is zero everywhere.
type FittedHazard []float64

func (h FittedHazard) At(day int) float64 {
	if len(h) == 0 {
		return 0
	}
	if day >= len(h) {
		return h[len(h)-1]
	}
	if day < 0 {
		return h[0]
	}
	return h[day]
}
