package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjector_ZeroHazards(t *testing.T) {
	p := &Projector{Hazard01: ConstantHazard(0), Hazard12: 0, Hazard23: 0}
	prob, err := p.DefaultProbability(180)
	require.NoError(t, err)
	assert.Zero(t, prob, "no hazard means no mass can reach default")
}

func TestProjector_SaturatingHazards(t *testing.T) {
	// With the entry hazard arbitrarily high and the deeper ones moderate,
	// nearly all mass should be absorbed over a long horizon.
	p := &Projector{Hazard01: ConstantHazard(50), Hazard12: 0.1, Hazard23: 0.1}
	prob, err := p.DefaultProbability(365)
	require.NoError(t, err)
	assert.Greater(t, prob, 0.95)
	assert.LessOrEqual(t, prob, 1.0+1e-9)
}

func TestProjector_ModerateHazardsBounded(t *testing.T) {
	p := &Projector{Hazard01: ConstantHazard(0.01), Hazard12: 0.02, Hazard23: 0.03}
	prob, err := p.DefaultProbability(DefaultHorizonDays)
	require.NoError(t, err)
	assert.Greater(t, prob, 0.0)
	assert.Less(t, prob, 1.0)
}

func TestProjector_MonotoneInHorizon(t *testing.T) {
	// Default is absorbing, so its mass can only grow with the horizon.
	p := &Projector{Hazard01: ConstantHazard(0.05), Hazard12: 0.05, Hazard23: 0.05}
	prev := 0.0
	for _, horizon := range []int{10, 30, 90, 180} {
		prob, err := p.DefaultProbability(horizon)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, prob, prev, "horizon %d", horizon)
		prev = prob
	}
}

func TestProjector_FittedCurve(t *testing.T) {
	// A fitted curve that is zero for the first 10 days delays absorption
	// relative to a constant curve of the later level.
	fitted := make(FittedHazard, 30)
	for i := 10; i < 30; i++ {
		fitted[i] = 0.2
	}
	delayed := &Projector{Hazard01: fitted, Hazard12: 0.1, Hazard23: 0.1}
	immediate := &Projector{Hazard01: ConstantHazard(0.2), Hazard12: 0.1, Hazard23: 0.1}

	pd, err := delayed.DefaultProbability(30)
	require.NoError(t, err)
	pi, err := immediate.DefaultProbability(30)
	require.NoError(t, err)
	assert.Less(t, pd, pi)
}

func TestProjector_Errors(t *testing.T) {
	tests := []struct {
		name    string
		p       *Projector
		horizon int
	}{
		{"zero horizon", &Projector{Hazard01: ConstantHazard(0.1)}, 0},
		{"nil entry curve", &Projector{}, 10},
		{"negative deep hazard", &Projector{Hazard01: ConstantHazard(0.1), Hazard12: -1}, 10},
		{"negative fitted value", &Projector{Hazard01: FittedHazard{0.1, -0.2}}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.DefaultProbability(tt.horizon)
			assert.Error(t, err)
		})
	}
}

func TestFittedHazard_At(t *testing.T) {
	h := FittedHazard{0.1, 0.2, 0.3}
	assert.Equal(t, 0.1, h.At(0))
	assert.Equal(t, 0.3, h.At(2))
	assert.Equal(t, 0.3, h.At(99), "days past the fitted range reuse the last value")
	assert.Equal(t, 0.1, h.At(-1))
	assert.Zero(t, FittedHazard(nil).At(5))
}
